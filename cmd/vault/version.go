// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newVersionCmd(e *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBuildInfo(cmd.OutOrStdout(), e.info)
		},
	}
}

func printBuildInfo(out io.Writer, info models.AppBuildInfo) error {
	for _, f := range info.Fields() {
		if _, err := fmt.Fprintf(out, "Build %s: %s\n", f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}
