// Package detail implements the hero detail screen.
//
// The screen subscribes to the parameter stream of its activated route and
// looks up the hero named by the "id" parameter on every emission. Only the
// latest emission counts: starting a lookup cancels the previous one and a
// generation counter discards any result that still arrives for it. A lookup
// miss sends the user back to the hero list.
package detail

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/logging"
	"github.com/rshade/heroes/internal/router"
	"github.com/rshade/heroes/internal/tui"
)

// ParamID is the route parameter holding the hero identifier.
const ParamID = "id"

const (
	// notFoundPath is where a lookup miss redirects, as path segments.
	notFoundPath = "/heroes/list"
	// backURL is where GoBack navigates.
	backURL = router.HeroListURL

	loadingMessage = "Loading hero..."
)

// State is the lifecycle state of the screen.
type State int

const (
	// StateLoading means a lookup for the current id is in flight.
	StateLoading State = iota
	// StateDisplaying means the hero for the current id is shown.
	StateDisplaying
	// StateRedirecting means the current id had no hero and the screen has
	// asked to leave for the hero list.
	StateRedirecting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	case StateRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// HeroGetter looks heroes up by id. A (nil, nil) result is a miss.
type HeroGetter interface {
	GetHeroByID(ctx context.Context, id string) (*hero.Hero, error)
}

// Navigator issues navigation commands.
type Navigator interface {
	Navigate(segments ...string) tea.Cmd
	NavigateByURL(url string) tea.Cmd
}

// ParamSource is the parameter stream of the route the screen is shown on.
// The channel is closed when the route is torn down.
type ParamSource interface {
	Params() <-chan router.Params
}

// ErrorMsg carries a HeroGetter failure to the enclosing program unchanged.
type ErrorMsg struct {
	ID  string
	Err error
}

func (e ErrorMsg) Error() string {
	return "looking up hero " + e.ID + ": " + e.Err.Error()
}

func (e ErrorMsg) Unwrap() error {
	return e.Err
}

type paramsMsg struct {
	viewID uint64
	params router.Params
}

type lookupResultMsg struct {
	viewID uint64
	gen    uint64
	id     string
	hero   *hero.Hero
	err    error
}

//nolint:gochecknoglobals // Distinguishes messages of successive screen instances.
var viewSeq atomic.Uint64

// Model is the hero detail screen.
type Model struct {
	viewID uint64
	ctx    context.Context
	cancel context.CancelFunc
	logger zerolog.Logger

	heroes HeroGetter
	nav    Navigator
	params ParamSource

	state  State
	hero   *hero.Hero
	heroID string

	gen          uint64
	pending      bool
	cancelLookup context.CancelFunc
	closed       bool

	loading  *tui.LoadingState
	spinning bool

	width  int
	height int
}

// New returns a detail screen reading ids from params. Lookups run under a
// child of ctx, so cancelling ctx also ends the screen's work.
func New(ctx context.Context, heroes HeroGetter, nav Navigator, params ParamSource) *Model {
	ctx, cancel := context.WithCancel(ctx)
	return &Model{
		viewID:  viewSeq.Add(1),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logging.ComponentLogger(*logging.FromContext(ctx), "hero-detail"),
		heroes:  heroes,
		nav:     nav,
		params:  params,
		state:   StateLoading,
		loading: tui.NewLoadingStateWithMessage(loadingMessage),
		width:   tui.DefaultWidth,
		height:  tui.DefaultHeight,
	}
}

// Init subscribes to the parameter stream and starts the loading spinner.
func (m *Model) Init() tea.Cmd {
	if m.closed {
		return nil
	}
	m.spinning = true
	return tea.Batch(m.listen(), m.loading.Init())
}

// Update handles stream emissions, lookup results, keys and spinner ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paramsMsg:
		return m, m.handleParams(msg)
	case lookupResultMsg:
		return m, m.handleLookupResult(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case spinner.TickMsg:
		return m, m.handleTick(msg)
	}
	return m, nil
}

// listen waits for the next emission. It yields nothing once the screen is
// closed or the stream ends.
func (m *Model) listen() tea.Cmd {
	ctx, ch, viewID := m.ctx, m.params.Params(), m.viewID
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-ch:
			if !ok {
				return nil
			}
			return paramsMsg{viewID: viewID, params: p}
		}
	}
}

func (m *Model) handleParams(msg paramsMsg) tea.Cmd {
	if m.closed || msg.viewID != m.viewID {
		return nil
	}

	id := msg.params.Get(ParamID)

	if m.cancelLookup != nil {
		m.cancelLookup()
	}
	lookupCtx, cancel := context.WithCancel(m.ctx)
	m.cancelLookup = cancel
	m.gen++
	m.pending = true
	m.heroID = id
	m.state = StateLoading

	m.logger.Debug().
		Ctx(m.ctx).
		Str("hero_id", id).
		Uint64("generation", m.gen).
		Msg("looking up hero")

	cmds := []tea.Cmd{m.lookup(lookupCtx, m.gen, id), m.listen()}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.loading.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) lookup(ctx context.Context, gen uint64, id string) tea.Cmd {
	heroes, viewID := m.heroes, m.viewID
	return func() tea.Msg {
		h, err := heroes.GetHeroByID(ctx, id)
		return lookupResultMsg{viewID: viewID, gen: gen, id: id, hero: h, err: err}
	}
}

func (m *Model) handleLookupResult(msg lookupResultMsg) tea.Cmd {
	if m.closed || msg.viewID != m.viewID || msg.gen != m.gen || !m.pending {
		return nil
	}
	m.pending = false

	if msg.err != nil {
		m.logger.Debug().Ctx(m.ctx).Err(msg.err).Str("hero_id", msg.id).Msg("hero lookup failed")
		err := ErrorMsg{ID: msg.id, Err: msg.err}
		return func() tea.Msg { return err }
	}

	if msg.hero == nil {
		m.state = StateRedirecting
		m.logger.Info().Ctx(m.ctx).Str("hero_id", msg.id).Msg("hero not found, redirecting to list")
		return m.nav.Navigate(notFoundPath)
	}

	m.hero = msg.hero
	m.state = StateDisplaying
	m.logger.Debug().Ctx(m.ctx).Str("hero_id", msg.id).Msg("hero loaded")
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case tui.KeyEsc, tui.KeyBack, tui.KeyBackspace:
		return m.GoBack()
	}
	return nil
}

func (m *Model) handleTick(msg spinner.TickMsg) tea.Cmd {
	if m.closed || m.state != StateLoading {
		m.spinning = false
		return nil
	}
	return m.loading.Update(msg)
}

// GoBack returns the command that navigates to the hero list.
func (m *Model) GoBack() tea.Cmd {
	return m.nav.NavigateByURL(backURL)
}

// Close tears the screen down: the subscription and any pending lookup are
// cancelled and later messages are ignored. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.cancelLookup != nil {
		m.cancelLookup()
	}
	m.cancel()
}

// Closed reports whether Close has been called.
func (m *Model) Closed() bool {
	return m.closed
}

// Hero returns the hero on display, or nil before the first hit.
func (m *Model) Hero() *hero.Hero {
	return m.hero
}

// HeroID returns the id of the latest emission.
func (m *Model) HeroID() string {
	return m.heroID
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	return m.state
}

// View renders the screen. A pending redirect renders nothing.
func (m *Model) View() string {
	switch m.state {
	case StateLoading:
		return tui.RenderLoading(m.loading) + "\n"
	case StateDisplaying:
		var b strings.Builder
		b.WriteString(tui.RenderHeroCard(m.hero, m.width))
		b.WriteString("\n")
		b.WriteString(tui.HelpStyle.Render("esc/b: back to list • q: quit"))
		b.WriteString("\n")
		return b.String()
	default:
		return ""
	}
}
