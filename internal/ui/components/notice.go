package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/ui/theme"
)

// NoticeKind selects the visual treatment of a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is a transient message box. Screens own its lifetime and
// dismiss it on a timer or a keypress.
type Notice struct {
	Kind  NoticeKind
	Title string
	Lines []string
}

// View renders the notice box, capped to width.
func (n Notice) View(width int) string {
	var style lipgloss.Style
	switch n.Kind {
	case NoticeSuccess:
		style = theme.NoticeSuccess
	case NoticeError:
		style = theme.NoticeError
	default:
		style = theme.NoticeInfo
	}

	var b strings.Builder
	if n.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(n.Title))
		if len(n.Lines) > 0 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString(strings.Join(n.Lines, "\n"))

	if width > 8 {
		style = style.MaxWidth(width - 4)
	}
	return style.Render(b.String())
}
