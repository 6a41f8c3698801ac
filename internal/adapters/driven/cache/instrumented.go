package cache

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

// Lookup results.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

var _ driven.ResultCache = (*Instrumented)(nil)

// Instrumented counts lookups and writes of a wrapped cache.
type Instrumented struct {
	next     driven.ResultCache
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	writes   *prometheus.CounterVec
}

// NewInstrumented wraps next with counters registered on a private registry.
func NewInstrumented(next driven.ResultCache) *Instrumented {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Instrumented{
		next:     next,
		registry: reg,
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "postnav",
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Total number of cache lookups by result",
			},
			[]string{"group", "result"},
		),
		writes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "postnav",
				Subsystem: "cache",
				Name:      "writes_total",
				Help:      "Total number of cache writes by status",
			},
			[]string{"group", "status"},
		),
	}
}

// Registry exposes the counters for scraping or printing.
func (c *Instrumented) Registry() *prometheus.Registry {
	return c.registry
}

// Lookups returns the lookup counter vector.
func (c *Instrumented) Lookups() *prometheus.CounterVec {
	return c.lookups
}

// Get delegates and records the outcome.
func (c *Instrumented) Get(ctx context.Context, group, key string) ([]byte, bool, error) {
	value, ok, err := c.next.Get(ctx, group, key)
	switch {
	case err != nil:
		c.lookups.WithLabelValues(group, ResultError).Inc()
	case ok:
		c.lookups.WithLabelValues(group, ResultHit).Inc()
	default:
		c.lookups.WithLabelValues(group, ResultMiss).Inc()
	}
	return value, ok, err
}

// Set delegates and records the outcome.
func (c *Instrumented) Set(ctx context.Context, group, key string, value []byte) error {
	err := c.next.Set(ctx, group, key, value)
	status := "ok"
	if err != nil {
		status = ResultError
	}
	c.writes.WithLabelValues(group, status).Inc()
	return err
}

// WriteStats prints every counter as "name{labels} value", sorted.
func (c *Instrumented) WriteStats(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for i, lp := range m.GetLabel() {
				if i > 0 {
					labels += ","
				}
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), labels, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
