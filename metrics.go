package xbrl

import (
	"sync/atomic"
	"time"
)

// Metrics tracks parse performance using lock-free atomic operations.
// All methods are safe for concurrent use across batch workers.
type Metrics struct {
	parsesTotal atomic.Uint64
	parsesClean atomic.Uint64 // parses with an empty validation-error list

	parseTimeTotal atomic.Uint64 // nanoseconds
	parseTimeMin   atomic.Uint64
	parseTimeMax   atomic.Uint64

	factsTotal    atomic.Uint64
	contextsTotal atomic.Uint64
	unitsTotal    atomic.Uint64
	errorsTotal   atomic.Uint64 // collected validation errors
}

// NewMetrics creates a Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first sample becomes the minimum
	m.parseTimeMin.Store(^uint64(0))
	return m
}

// RecordParse records one completed parse.
func (m *Metrics) RecordParse(duration time.Duration, facts, contexts, units, validationErrors int) {
	m.parsesTotal.Add(1)
	if validationErrors == 0 {
		m.parsesClean.Add(1)
	}
	m.factsTotal.Add(uint64(facts))
	m.contextsTotal.Add(uint64(contexts))
	m.unitsTotal.Add(uint64(units))
	m.errorsTotal.Add(uint64(validationErrors))

	ns := uint64(duration.Nanoseconds())
	m.parseTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.parseTimeMin.Load()
		if ns >= old {
			break
		}
		if m.parseTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.parseTimeMax.Load()
		if ns <= old {
			break
		}
		if m.parseTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// ParsesTotal returns the total number of completed parses.
func (m *Metrics) ParsesTotal() uint64 {
	return m.parsesTotal.Load()
}

// ParsesClean returns how many parses produced no validation errors.
func (m *Metrics) ParsesClean() uint64 {
	return m.parsesClean.Load()
}

// CleanRate returns the fraction of parses with no validation errors.
func (m *Metrics) CleanRate() float64 {
	total := m.parsesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.parsesClean.Load()) / float64(total)
}

// AverageParseTime returns the mean parse duration.
func (m *Metrics) AverageParseTime() time.Duration {
	total := m.parsesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.parseTimeTotal.Load() / total)
}

// MinParseTime returns the fastest recorded parse.
func (m *Metrics) MinParseTime() time.Duration {
	minVal := m.parseTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxParseTime returns the slowest recorded parse.
func (m *Metrics) MaxParseTime() time.Duration {
	return time.Duration(m.parseTimeMax.Load())
}

// FactsTotal returns the total facts extracted across all parses.
func (m *Metrics) FactsTotal() uint64 {
	return m.factsTotal.Load()
}

// ValidationErrorsTotal returns the total validation errors collected.
func (m *Metrics) ValidationErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	ParsesTotal uint64  `json:"parses_total"`
	ParsesClean uint64  `json:"parses_clean"`
	CleanRate   float64 `json:"clean_rate"`

	AvgParseTimeNs uint64 `json:"avg_parse_time_ns"`
	MinParseTimeNs uint64 `json:"min_parse_time_ns"`
	MaxParseTimeNs uint64 `json:"max_parse_time_ns"`

	FactsTotal            uint64 `json:"facts_total"`
	ContextsTotal         uint64 `json:"contexts_total"`
	UnitsTotal            uint64 `json:"units_total"`
	ValidationErrorsTotal uint64 `json:"validation_errors_total"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	total := m.parsesTotal.Load()

	var avg uint64
	if total > 0 {
		avg = m.parseTimeTotal.Load() / total
	}

	minTime := m.parseTimeMin.Load()
	if minTime == ^uint64(0) {
		minTime = 0
	}

	return Snapshot{
		Timestamp:             time.Now(),
		ParsesTotal:           total,
		ParsesClean:           m.parsesClean.Load(),
		CleanRate:             m.CleanRate(),
		AvgParseTimeNs:        avg,
		MinParseTimeNs:        minTime,
		MaxParseTimeNs:        m.parseTimeMax.Load(),
		FactsTotal:            m.factsTotal.Load(),
		ContextsTotal:         m.contextsTotal.Load(),
		UnitsTotal:            m.unitsTotal.Load(),
		ValidationErrorsTotal: m.errorsTotal.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.parsesTotal.Store(0)
	m.parsesClean.Store(0)
	m.parseTimeTotal.Store(0)
	m.parseTimeMin.Store(^uint64(0))
	m.parseTimeMax.Store(0)
	m.factsTotal.Store(0)
	m.contextsTotal.Store(0)
	m.unitsTotal.Store(0)
	m.errorsTotal.Store(0)
}
