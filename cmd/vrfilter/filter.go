package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/message"
)

const stdio = "-"

func newFilterCmd(c *cli) *cobra.Command {
	var (
		in     string
		out    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter one JSON envelope",
		Long: `Reads one JSON envelope, removes every record property the allow-list does
not permit and writes the filtered envelope as JSON.

Envelopes that carry no record (void, alias, acknowledgement, ...) are written
back unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}

			env, err := readEnvelope(cmd.InOrStdin(), in)
			if err != nil {
				return err
			}

			filtered, diags := svc.FilterWithDiagnostics(env)
			if err := writeEnvelope(cmd.OutOrStdout(), out, filtered); err != nil {
				return err
			}

			if strict && diags.Len() > 0 {
				return fmt.Errorf("%d allowed paths could not be applied to message %s", diags.Len(), env.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", stdio, "Input envelope file, - for stdin")
	cmd.Flags().StringVarP(&out, "out", "o", stdio, "Output file, - for stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when an allowed path cannot be applied to the record")

	return cmd
}

func readEnvelope(stdin io.Reader, path string) (message.Envelope[deathrecord.DeathRecord], error) {
	var env message.Envelope[deathrecord.DeathRecord]

	r := stdin
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return env, fmt.Errorf("failed to open envelope %s: %w", path, err)
		}
		defer f.Close()

		r = f
	}

	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return env, fmt.Errorf("failed to parse envelope: %w", err)
	}

	if err := env.Validate(); err != nil {
		return env, err
	}

	return env, nil
}

func writeEnvelope(stdout io.Writer, path string, env message.Envelope[deathrecord.DeathRecord]) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	data = append(data, '\n')

	if path == stdio {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write envelope %s: %w", path, err)
	}

	return nil
}
