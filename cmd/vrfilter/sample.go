package main

import (
	"github.com/spf13/cobra"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/message"
)

func newSampleCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a sample envelope with a fictitious record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := message.ParseKind(kind)
			if err != nil {
				return err
			}

			env := message.NewEnvelope(k, deathrecord.Sample())
			env.Source = "MA"
			env.Destination = "NCHS"

			return writeEnvelope(cmd.OutOrStdout(), stdio, env)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "submission", "Message kind")

	return cmd
}
