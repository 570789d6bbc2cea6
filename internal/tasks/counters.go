package tasks

import (
	"sync"

	"github.com/desertthunder/lrcx/internal/models"
)

// Counter names one outcome counter.
type Counter int

const (
	CounterFound Counter = iota
	CounterNotFound
	CounterUpgraded
	CounterRomanized
	CounterEmbedded
	CounterErrors
)

// Summary is a point-in-time copy of the outcome counters.
type Summary struct {
	Found     int `json:"found"`
	NotFound  int `json:"not_found"`
	Upgraded  int `json:"upgraded"`
	Romanized int `json:"romanized"`
	Embedded  int `json:"embedded"`
	Errors    int `json:"errors"`
}

// Counters aggregates job outcomes for a run. The zero value is ready to use.
//
// Every increment holds mu for exactly one read-modify-write.
type Counters struct {
	mu sync.Mutex
	s  Summary
}

// Inc increments one counter.
func (c *Counters) Inc(counter Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch counter {
	case CounterFound:
		c.s.Found++
	case CounterNotFound:
		c.s.NotFound++
	case CounterUpgraded:
		c.s.Upgraded++
	case CounterRomanized:
		c.s.Romanized++
	case CounterEmbedded:
		c.s.Embedded++
	case CounterErrors:
		c.s.Errors++
	}
}

// Snapshot returns a copy of the current counts.
func (c *Counters) Snapshot() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

// Apply records one job result: exactly one primary counter plus the additive flags.
func (c *Counters) Apply(res models.JobResult) {
	switch res.Outcome {
	case models.OutcomeFound:
		c.Inc(CounterFound)
	case models.OutcomeUpgraded:
		c.Inc(CounterUpgraded)
	case models.OutcomeNotFound, models.OutcomeKept:
		c.Inc(CounterNotFound)
	case models.OutcomeFailed:
		c.Inc(CounterErrors)
	}

	if res.Romanized {
		c.Inc(CounterRomanized)
	}
	if res.Embedded {
		c.Inc(CounterEmbedded)
	}
}
