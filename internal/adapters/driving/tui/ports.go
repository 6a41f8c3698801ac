// Package tui provides an interactive timeline browser for postnav.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/postnav/internal/core/domain"
	"github.com/custodia-labs/postnav/internal/core/ports/driving"
)

// Ports aggregates the driving ports and inputs required by the TUI.
type Ports struct {
	// Navigation resolves adjacent and boundary posts.
	Navigation driving.NavigationService

	// Start is the post browsing begins at.
	Start *domain.Post

	// Options are the initial navigation constraints.
	Options domain.Options
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Navigation == nil {
		return ErrMissingNavigationService
	}
	if p.Start == nil {
		return ErrMissingStartPost
	}
	return nil
}
