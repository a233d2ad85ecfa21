// Package app is the interactive shell of the heroes TUI. It owns the router,
// turns router.NavigateMsg into page changes and hosts the active page.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/logging"
	"github.com/rshade/heroes/internal/router"
	"github.com/rshade/heroes/internal/tui"
	"github.com/rshade/heroes/internal/tui/detail"
)

const (
	promptPlaceholder = "hero id, e.g. marvel-iron"
	promptCharLimit   = 64
	maxIDHints        = 8
)

// IDLister is implemented by hero sources that can enumerate their ids.
// The list page shows them as hints when available.
type IDLister interface {
	IDs() []string
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	logger zerolog.Logger

	router   *router.Router
	nav      router.Navigator
	heroes   detail.HeroGetter
	startURL string

	current router.Match
	detail  *detail.Model
	route   *router.ActivatedRoute

	prompt    textinput.Model
	promptErr error

	err    error
	width  int
	height int
}

// New returns a shell that opens startURL on Init.
func New(ctx context.Context, heroes detail.HeroGetter, startURL string) *Model {
	ti := textinput.New()
	ti.Placeholder = promptPlaceholder
	ti.CharLimit = promptCharLimit
	ti.Prompt = "Hero id: "

	return &Model{
		ctx:      ctx,
		logger:   logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		router:   router.NewHeroRouter(),
		heroes:   heroes,
		startURL: startURL,
		prompt:   ti,
		width:    tui.DefaultWidth,
		height:   tui.DefaultHeight,
	}
}

// Init navigates to the start URL.
func (m *Model) Init() tea.Cmd {
	return m.navigate(m.startURL)
}

// Update routes navigation and errors, and forwards everything else to the active page.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case router.NavigateMsg:
		return m, m.navigate(msg.URL)
	case detail.ErrorMsg:
		m.logger.Error().Ctx(m.ctx).Err(msg.Err).Str("hero_id", msg.ID).Msg("hero lookup failed")
		m.err = msg
		return m, m.quit()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prompt.Width = max(msg.Width-len(m.prompt.Prompt)-1, 0)
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}
	return m, m.updatePage(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case tui.KeyCtrlC:
		return m.quit(), true
	case tui.KeyQuit:
		if m.onDetail() {
			return m.quit(), true
		}
	case tui.KeyEsc:
		if !m.onDetail() {
			return m.quit(), true
		}
	case tui.KeyEnter:
		if !m.onDetail() {
			return m.submitPrompt(), true
		}
	}
	return nil, false
}

func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	if m.onDetail() {
		_, cmd := m.detail.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// navigate resolves url and shows its page. Navigating between two hero
// detail URLs keeps the page and emits the new parameters into its route.
func (m *Model) navigate(url string) tea.Cmd {
	match, err := m.router.Resolve(m.ctx, url)
	if err != nil {
		m.err = err
		return m.quit()
	}
	m.current = match
	m.logger.Info().Ctx(m.ctx).
		Str("url", match.URL).
		Str("route", match.Route.Name).
		Str("reason", match.Reason.String()).
		Msg("navigate")

	switch match.Route.Name {
	case router.RouteHeroDetail:
		if m.onDetail() && m.route.Emit(match.Params) {
			return nil
		}
		m.closePage()
		m.route = router.NewActivatedRoute(match.Params)
		m.detail = detail.New(m.ctx, m.heroes, m.nav, m.route)
		m.detail.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m.detail.Init()
	default:
		m.closePage()
		m.prompt.Reset()
		m.promptErr = nil
		return m.prompt.Focus()
	}
}

func (m *Model) submitPrompt() tea.Cmd {
	id := strings.TrimSpace(m.prompt.Value())
	if err := hero.ValidateID(id); err != nil {
		m.promptErr = err
		return nil
	}
	m.promptErr = nil
	return m.nav.Navigate("heroes", id)
}

func (m *Model) onDetail() bool {
	return m.detail != nil && !m.detail.Closed()
}

func (m *Model) closePage() {
	if m.detail != nil {
		m.detail.Close()
		m.detail = nil
	}
	if m.route != nil {
		m.route.Close()
		m.route = nil
	}
}

func (m *Model) quit() tea.Cmd {
	m.closePage()
	return tea.Quit
}

// Close releases the active page. Call it after the program exits.
func (m *Model) Close() {
	m.closePage()
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// URL returns the normalized URL of the page on screen.
func (m *Model) URL() string {
	return m.current.URL
}

// Detail returns the hero detail page, or nil when another page is shown.
func (m *Model) Detail() *detail.Model {
	if !m.onDetail() {
		return nil
	}
	return m.detail
}

// View renders a breadcrumb header followed by the active page.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(tui.BreadcrumbStyle.Render(strings.ReplaceAll(m.current.URL, "/", " / ")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(tui.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.onDetail() {
		b.WriteString(m.detail.View())
		return b.String()
	}

	b.WriteString(m.prompt.View())
	b.WriteString("\n")
	if m.promptErr != nil {
		b.WriteString(tui.ErrorStyle.Render(m.promptErr.Error()))
		b.WriteString("\n")
	}
	if hints := m.idHints(); hints != "" {
		b.WriteString("\n")
		b.WriteString(tui.LabelStyle.Render("Known heroes: "))
		b.WriteString(tui.ValueStyle.Render(hints))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("enter: open hero • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) idHints() string {
	lister, ok := m.heroes.(IDLister)
	if !ok {
		return ""
	}
	ids := lister.IDs()
	if len(ids) > maxIDHints {
		ids = append(ids[:maxIDHints:maxIDHints], "…")
	}
	return strings.Join(ids, ", ")
}
