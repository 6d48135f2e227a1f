// Package style provides shared UI styling primitives including brand colors
// and icons for the kiln CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/kiln/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Status returns the icon and color used to render a block in the given state.
func Status(s domain.VertexStatus) (string, lipgloss.Color) {
	switch s {
	case domain.VertexStatusCompleted:
		return Check, Green
	case domain.VertexStatusCached:
		return Tilde, Iris
	case domain.VertexStatusFailed:
		return Cross, Red
	case domain.VertexStatusRunning:
		return Dot, Yellow
	default:
		return Circle, Slate
	}
}
