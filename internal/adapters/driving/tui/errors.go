package tui

import "errors"

// ErrMissingNavigationService is returned when the navigation service is not provided.
var ErrMissingNavigationService = errors.New("tui: navigation service is required")

// ErrMissingStartPost is returned when no post to start browsing from is provided.
var ErrMissingStartPost = errors.New("tui: start post is required")
