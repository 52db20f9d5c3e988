package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"locator/internal/adapters/tui/styles"
	"locator/internal/domain"
)

const ellipsis = "..."

// kindTag labels a result row with its resource kind
func kindTag(kind domain.ResourceKind) string {
	if kind == domain.KindFile {
		return "[FILE]"
	}
	return "[APP]"
}

// ResultRow renders one search hit as "<tag> <name> <target>". The target
// is shortened from the left so the row fits in width columns.
func ResultRow(r domain.Resource, selected bool, width int) string {
	label := kindTag(r.Kind) + " " + r.Name()

	style := styles.KindStyle(r.Kind.String())
	if selected {
		style = styles.ResultSelected
	}
	row := style.Render(label)

	room := width - lipgloss.Width(row) - 1
	return row + " " + styles.ResultDetail.Render(Truncate(r.Target(), room))
}

// Truncate keeps the last n runes of s, marking the cut with a leading
// ellipsis. Paths keep their file name visible this way. n <= 0 disables
// truncation.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return string(runes[:n])
	}
	return ellipsis + string(runes[len(runes)-n+len(ellipsis):])
}

// RenderMessage renders a status line, red for errors and green otherwise
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// ViewBuilder assembles a view top to bottom
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Results adds the rows of results visible on the paginator's page, with
// the cursor row highlighted
func (v *ViewBuilder) Results(results []domain.Resource, p *Paginator, width int) *ViewBuilder {
	start, end := p.VisibleRange()
	end = min(end, len(results))
	for i := start; i < end; i++ {
		v.Line(ResultRow(results[i], i == p.Cursor(), width))
	}
	return v
}

// Message adds a message if non-empty
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds the key binding hints joined by bullets
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", styles.HelpKey.Render(h.Key), styles.HelpDesc.Render(h.Desc)))
	}
	v.b.WriteString(strings.Join(parts, styles.HelpSeparator.String()))
	return v
}

// String returns the built view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
