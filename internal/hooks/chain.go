// Package hooks provides typed extension points for navigation queries
// and rendered links.
//
// Each event has a fixed filter signature. Filters registered for an
// event run synchronously in registration order; each receives the
// value returned by the previous filter plus read-only context.
package hooks

// Filter transforms a value given event context.
type Filter[V, C any] func(value V, ctx C) V

// Chain runs filters in the order they were added.
type Chain[V, C any] struct {
	filters []Filter[V, C]
}

// Add appends a filter to the chain.
func (c *Chain[V, C]) Add(f Filter[V, C]) {
	if f == nil {
		return
	}
	c.filters = append(c.filters, f)
}

// Apply runs the value through all filters in order.
// A nil chain returns the value unchanged.
func (c *Chain[V, C]) Apply(value V, ctx C) V {
	if c == nil {
		return value
	}
	for _, f := range c.filters {
		value = f(value, ctx)
	}
	return value
}

// Len returns the number of filters in the chain.
func (c *Chain[V, C]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}
