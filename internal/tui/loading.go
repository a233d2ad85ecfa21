package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultLoadingMessage = "Loading..."

// LoadingState is a spinner with a caption, shown while a screen waits on data.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingStateWithMessage returns a loading indicator with a custom caption.
func NewLoadingStateWithMessage(message string) *LoadingState {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &LoadingState{spinner: s, message: message}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its own tick messages and ignores everything else.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Message returns the caption.
func (l *LoadingState) Message() string {
	return l.message
}

// RenderLoading renders the spinner and caption on one line.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return InfoStyle.Render(defaultLoadingMessage)
	}
	return l.spinner.View() + " " + InfoStyle.Render(l.message)
}
