package worker

import "github.com/dayofkishore/ind-fin-xbrl/model"

// Job is one instance document to parse.
type Job struct {
	// ID identifies this job in its result. When empty, the path is used.
	ID string

	// Path is the instance document to parse.
	Path string
}

// JobResult is the outcome of one parse job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Instance is the parsed instance, nil when the parse failed fatally.
	Instance *model.Instance

	// Error holds the fatal parse error, if any.
	Error error

	// Duration is the time taken to parse, in nanoseconds.
	Duration int64
}

// BatchResult aggregates the results of a batch.
type BatchResult struct {
	// Results holds all job results.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs that ran (including failures).
	CompletedJobs int

	// FailedJobs is the number of jobs that failed with a fatal error.
	FailedJobs int

	// TotalDuration is the summed parse time across jobs, in nanoseconds.
	TotalDuration int64
}

// HasErrors reports whether any job failed fatally or parsed with
// validation errors.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r == nil {
			continue
		}
		if r.Error != nil {
			return true
		}
		if r.Instance != nil && !r.Instance.Valid() {
			return true
		}
	}
	return false
}

// ValidationErrorCount returns the total validation errors collected
// across all parsed instances.
func (br *BatchResult) ValidationErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Instance != nil {
			count += len(r.Instance.ValidationErrors)
		}
	}
	return count
}

// FactCount returns the total facts extracted across all parsed
// instances.
func (br *BatchResult) FactCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Instance != nil {
			count += r.Instance.FactCount()
		}
	}
	return count
}
