package router

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the application shell to show the screen for URL.
type NavigateMsg struct {
	URL string
}

// Navigator issues navigation as Bubble Tea commands. The zero value is ready to use.
type Navigator struct{}

// Navigate navigates to the URL formed by joining segments.
func (Navigator) Navigate(segments ...string) tea.Cmd {
	url := JoinSegments(segments...)
	return func() tea.Msg {
		return NavigateMsg{URL: url}
	}
}

// NavigateByURL navigates to url.
func (Navigator) NavigateByURL(url string) tea.Cmd {
	norm := Normalize(url)
	return func() tea.Msg {
		return NavigateMsg{URL: norm}
	}
}
