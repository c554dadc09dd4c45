package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/engine"
	"github.com/dayofkishore/ind-fin-xbrl/model"
	"github.com/dayofkishore/ind-fin-xbrl/worker"
)

// parseSummary is the per-document JSON output of the parse command.
type parseSummary struct {
	Source            string   `json:"source"`
	Valid             bool     `json:"valid"`
	Entity            string   `json:"entity_identifier"`
	FiscalPeriodFocus string   `json:"fiscal_period_focus,omitempty"`
	Contexts          int      `json:"contexts"`
	Units             int      `json:"units"`
	Facts             int      `json:"facts"`
	ValidationErrors  []string `json:"validation_errors,omitempty"`
	Error             string   `json:"error,omitempty"`
	Duration          string   `json:"duration,omitempty"`
}

func newParseCmd(a *app) *cobra.Command {
	var outputJSON bool
	var full bool

	cmd := &cobra.Command{
		Use:   "parse <file|glob>...",
		Short: "Parse instance documents and report their contents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}

			p := a.newParser()
			batch := worker.NewBatchParser(p, a.cfg.Workers)

			start := time.Now()
			result := batch.ParseBatch(cmd.Context(), paths)
			a.log.Info().
				Int("documents", result.TotalJobs).
				Int("failed", result.FailedJobs).
				Dur("elapsed", time.Since(start)).
				Msg("batch complete")

			if full && outputJSON {
				return writeInstances(cmd, result)
			}
			return writeSummaries(cmd, result, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "emit JSON output")
	cmd.Flags().BoolVar(&full, "full", false, "with --json, emit the complete parsed instances")

	return cmd
}

func (a *app) newParser() *engine.Parser {
	return engine.New(
		xbrl.WithMaxValidationErrors(a.cfg.MaxValidationErrors),
		xbrl.WithFootnotes(a.cfg.ResolveFootnotes),
		xbrl.WithWorkerCount(a.cfg.Workers),
		xbrl.WithDocumentCache(a.cfg.DocumentCacheSize),
		xbrl.WithLogger(a.log),
	)
}

// expandGlobs expands glob arguments to concrete paths; a pattern that
// matches nothing is an error, a literal path passes through.
func expandGlobs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(arg); statErr != nil {
				return nil, fmt.Errorf("no files match %q", arg)
			}
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func writeSummaries(cmd *cobra.Command, result *worker.BatchResult, asJSON bool) error {
	summaries := make([]parseSummary, 0, len(result.Results))
	for _, r := range result.Results {
		if r == nil {
			continue
		}
		summaries = append(summaries, summarize(r))
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(summaries); err != nil {
			return err
		}
	} else {
		for _, s := range summaries {
			printSummary(cmd, s)
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("%d of %d documents had problems", problemCount(result), result.TotalJobs)
	}
	return nil
}

func writeInstances(cmd *cobra.Command, result *worker.BatchResult) error {
	instances := make([]*model.Instance, 0, len(result.Results))
	for _, r := range result.Results {
		if r != nil && r.Instance != nil {
			instances = append(instances, r.Instance)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(instances); err != nil {
		return err
	}

	if result.HasErrors() {
		return fmt.Errorf("%d of %d documents had problems", problemCount(result), result.TotalJobs)
	}
	return nil
}

func summarize(r *worker.JobResult) parseSummary {
	s := parseSummary{
		Source:   r.ID,
		Duration: time.Duration(r.Duration).Round(time.Microsecond).String(),
	}
	if r.Error != nil {
		s.Error = r.Error.Error()
		return s
	}
	in := r.Instance
	s.Valid = in.Valid()
	s.Entity = in.Entity
	s.FiscalPeriodFocus = in.FiscalPeriodFocus
	s.Contexts = in.ContextCount()
	s.Units = in.UnitCount()
	s.Facts = in.FactCount()
	s.ValidationErrors = in.ValidationErrors
	return s
}

func printSummary(cmd *cobra.Command, s parseSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "== %s ==\n", s.Source)
	if s.Error != "" {
		fmt.Fprintf(out, "Status: FAILED\nError: %s\n\n", s.Error)
		return
	}

	status := "VALID"
	if !s.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(out, "Status: %s\n", status)
	fmt.Fprintf(out, "Entity: %s\n", s.Entity)
	fmt.Fprintf(out, "Contexts: %d, Units: %d, Facts: %d\n", s.Contexts, s.Units, s.Facts)
	fmt.Fprintf(out, "Duration: %s\n", s.Duration)

	if len(s.ValidationErrors) > 0 {
		fmt.Fprintln(out, "\nValidation errors:")
		for _, msg := range s.ValidationErrors {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
	fmt.Fprintln(out)
}

func problemCount(result *worker.BatchResult) int {
	count := 0
	for _, r := range result.Results {
		if r == nil {
			continue
		}
		if r.Error != nil || (r.Instance != nil && !r.Instance.Valid()) {
			count++
		}
	}
	return count
}
