package views

import "locator/internal/adapters/tui/styles"

// ViewState holds the terminal size and the status line shared by the
// search and help views
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the terminal dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// ContentWidth is the usable row width inside the app frame, or 0 before
// the first window size message
func (s *ViewState) ContentWidth() int {
	if s.Width == 0 {
		return 0
	}
	return max(s.Width-styles.App.GetHorizontalFrameSize(), 0)
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}
