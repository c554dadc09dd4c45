package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayofkishore/ind-fin-xbrl/discovery"
)

func newDiscoverCmd(a *app) *cobra.Command {
	var recursive bool
	var pattern string
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "discover [dir]",
		Short: "Find parseable instance documents in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.DataDir
			if len(args) == 1 {
				dir = args[0]
			}

			instances, err := discovery.FindInstances(dir, recursive, pattern)
			if err != nil {
				return err
			}
			a.log.Info().Str("dir", dir).Int("instances", len(instances)).Msg("discovery complete")

			out := cmd.OutOrStdout()
			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(instances)
			}
			for _, path := range instances {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().StringVar(&pattern, "pattern", "", "filename glob filter")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "emit JSON output")

	return cmd
}
