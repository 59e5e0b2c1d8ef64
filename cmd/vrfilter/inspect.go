package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/mapping"
)

func newInspectCmd(c *cli) *cobra.Command {
	var (
		dump      bool
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the property paths an allow-list resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.RequireFilterFiles(); err != nil {
				return err
			}

			set, report, err := mapping.LoadWithReport(mapping.File(c.cfg.AllowList), mapping.File(c.cfg.Mapping))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if dump {
				spew.Fdump(w, set.Paths(), report)
				return nil
			}

			fmt.Fprintf(w, "Allowed codes: %d\n", len(report.Allowed))
			fmt.Fprintf(w, "Allowed paths: %d\n", set.Len())

			for _, p := range set.Paths() {
				note := ""
				if _, ok := deathrecord.Schema.Property(p.Name); !ok {
					note = "  (unknown property)"
				}

				fmt.Fprintf(w, "  %-40s %s%s\n", p.String(), p.Kind, note)
			}

			if len(report.Unmapped) > 0 {
				fmt.Fprintf(w, "Codes without mapping: %v\n", report.Unmapped)
			}

			if len(report.SentinelOnly) > 0 {
				fmt.Fprintf(w, "Codes without record property: %v\n", report.SentinelOnly)
			}

			if showTable {
				data, err := mapping.Marshal(report.Table)
				if err != nil {
					return fmt.Errorf("failed to marshal mapping table: %w", err)
				}

				fmt.Fprintf(w, "Effective mapping table:\n%s", data)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the resolved paths and load report")
	cmd.Flags().BoolVar(&showTable, "table", false, "Print the mapping table entries reachable from the allow-list")

	return cmd
}
