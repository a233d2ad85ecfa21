package tui

// Key bindings shared by every screen.
const (
	KeyQuit      = "q"
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyEnter     = "enter"
	KeyBack      = "b"
	KeyBackspace = "backspace"
)

// Default terminal dimensions used before the first tea.WindowSizeMsg.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	minCardWidth  = 40
	borderPadding = 2
)
