package xbrl

import (
	"fmt"
	"sync"
)

// Collector accumulates validation issues during one parse. Order of
// collection is preserved so the sequential single-document path is
// deterministic. All methods are safe for concurrent use, although a
// single parse is strictly sequential.
type Collector struct {
	mu     sync.Mutex
	issues []Issue

	// max caps collected issues; 0 means unlimited. Issues beyond the cap
	// are counted but dropped.
	max     int
	dropped int
}

// NewCollector creates a Collector. max caps the number of retained
// issues; 0 means unlimited.
func NewCollector(max int) *Collector {
	return &Collector{
		issues: make([]Issue, 0, 8),
		max:    max,
	}
}

// Add appends an issue to the collector.
func (c *Collector) Add(issue Issue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.max > 0 && len(c.issues) >= c.max {
		c.dropped++
		return
	}
	c.issues = append(c.issues, issue)
}

// Errorf collects an error-severity issue with a formatted message.
func (c *Collector) Errorf(code Code, location, format string, args ...any) {
	c.Add(Issue{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// Warnf collects a warning-severity issue with a formatted message.
func (c *Collector) Warnf(code Code, location, format string, args ...any) {
	c.Add(Issue{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// Issues returns a copy of the collected issues in collection order.
func (c *Collector) Issues() []Issue {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// Messages flattens the collected issues to the plain human-readable
// sentences carried on the Instance.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.issues) == 0 {
		return nil
	}
	out := make([]string, len(c.issues))
	for i, issue := range c.issues {
		out[i] = issue.String()
	}
	return out
}

// Len returns the number of retained issues.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.issues)
}

// Dropped returns how many issues were discarded because of the cap.
func (c *Collector) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// HasErrors reports whether any retained issue has error severity.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, issue := range c.issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}
