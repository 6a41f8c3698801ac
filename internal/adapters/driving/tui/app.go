package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/postnav/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postnav/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/postnav/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postnav/internal/core/domain"
)

// App is the root Bubbletea model. It shows one post at a time and
// moves along the timeline with the navigation service.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	current *domain.Post
	opts    domain.Options
	status  string
	err     error
	loading bool
	width   int
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		help:    help.New(),
		current: ports.Start,
		opts:    ports.Options,
	}, nil
}

// WithContext sets the context used for navigation lookups.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Current returns the post being displayed.
func (a *App) Current() *domain.Post {
	return a.current
}

// SameTerm reports whether same-term navigation is on.
func (a *App) SameTerm() bool {
	return a.opts.InSameTerm
}

// Status returns the last status line.
func (a *App) Status() string {
	return a.status
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.PostLoaded:
		a.loading = false
		a.err = nil
		switch {
		case errors.Is(msg.Err, domain.ErrNotFound):
			a.status = fmt.Sprintf("No %s post", msg.Kind)
		case msg.Err != nil:
			a.err = msg.Err
			a.status = ""
		default:
			a.current = msg.Post
			a.status = ""
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.SameTerm):
		a.opts.InSameTerm = !a.opts.InSameTerm
		if a.opts.InSameTerm {
			a.status = "Same term: on"
		} else {
			a.status = "Same term: off"
		}
		return a, nil
	case key.Matches(msg, a.keys.Previous):
		return a, a.navigate(domain.LinkPrevious)
	case key.Matches(msg, a.keys.Next):
		return a, a.navigate(domain.LinkNext)
	case key.Matches(msg, a.keys.First):
		return a, a.navigate(domain.LinkStart)
	case key.Matches(msg, a.keys.Last):
		return a, a.navigate(domain.LinkEnd)
	}
	return a, nil
}

// navigate returns a command resolving the post in the given direction
// from the current one.
func (a *App) navigate(kind domain.LinkKind) tea.Cmd {
	if a.loading {
		return nil
	}
	a.loading = true

	nav := a.ports.Navigation
	ctx := a.ctx
	view := domain.SingleView(a.current)
	opts := a.opts

	return func() tea.Msg {
		var (
			post *domain.Post
			err  error
		)
		switch kind {
		case domain.LinkPrevious:
			post, err = nav.AdjacentPost(ctx, view, opts, domain.Previous)
		case domain.LinkNext:
			post, err = nav.AdjacentPost(ctx, view, opts, domain.Next)
		case domain.LinkStart:
			post, err = nav.BoundaryPost(ctx, view, opts, domain.Start)
		case domain.LinkEnd:
			post, err = nav.BoundaryPost(ctx, view, opts, domain.End)
		}
		return messages.PostLoaded{Kind: kind, Post: post, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("postnav"))
	if a.opts.InSameTerm {
		b.WriteString(a.styles.Muted.Render("  [same " + a.opts.TaxonomyOrDefault("") + "]"))
	}
	b.WriteString("\n\n")

	title := a.current.Title
	if title == "" {
		title = "(untitled)"
	}
	card := a.styles.PostTitle.Render(title) + "\n" +
		a.styles.Muted.Render(fmt.Sprintf("#%d  %s  %s", a.current.ID, a.current.Type, a.current.Date.Format("2006-01-02 15:04")))
	b.WriteString(a.styles.Card.Render(card))
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	case a.status != "":
		b.WriteString(a.styles.Warning.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, ports *Ports) error {
	app, err := NewApp(ports)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app.WithContext(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
