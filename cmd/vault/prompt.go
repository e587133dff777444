// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errEmptyInput = errors.New("no input")

// secretPrompter reads a secret for cmd, echoing label first when talking
// to a terminal.
type secretPrompter func(cmd *cobra.Command, label string) (string, error)

// terminalPrompt reads without echo from a terminal, or a single line from
// piped stdin.
func terminalPrompt(cmd *cobra.Command, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	return readLine(cmd)
}

func readLine(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", errEmptyInput)
		}
		return "", errEmptyInput
	}
	return line, nil
}
