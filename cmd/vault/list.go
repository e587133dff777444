// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newListCmd(e *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored credentials (passwords are never printed)",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withSession(cmd, func(sess *session) error {
				return printCredentials(cmd.OutOrStdout(), sess.store.Passwords(), asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newSearchCmd(e *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List credentials whose service, account or notes contain the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withSession(cmd, func(sess *session) error {
				return printCredentials(cmd.OutOrStdout(), sess.store.Search(args[0]), asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printCredentials(out io.Writer, items []models.Credential, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if items == nil {
			items = []models.Credential{}
		}
		return enc.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "No credentials stored")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tACCOUNT\tMODIFIED\tNOTES")
	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Service, c.Account, c.LastModified.Local().Format("2006-01-02 15:04"), c.Notes)
	}
	return w.Flush()
}
