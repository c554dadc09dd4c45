package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// validateSummary is the per-document JSON output of the validate command.
type validateSummary struct {
	Source   string   `json:"source"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "validate <file|glob>...",
		Short: "Structurally validate instance documents without building facts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}

			p := a.newParser()
			out := cmd.OutOrStdout()

			invalid := 0
			summaries := make([]validateSummary, 0, len(paths))
			for _, path := range paths {
				ok, problems := p.Validate(cmd.Context(), path)
				if !ok {
					invalid++
				}
				summaries = append(summaries, validateSummary{
					Source:   path,
					Valid:    ok,
					Problems: problems,
				})
			}

			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(summaries); err != nil {
					return err
				}
			} else {
				for _, s := range summaries {
					status := "VALID"
					if !s.Valid {
						status = "INVALID"
					}
					fmt.Fprintf(out, "%s: %s\n", s.Source, status)
					for _, msg := range s.Problems {
						fmt.Fprintf(out, "  - %s\n", msg)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d documents are invalid", invalid, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "emit JSON output")

	return cmd
}
