package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/ui/theme"
)

// Likert is a single-choice frequency selector. Options are rated 1..len,
// low to high. Chosen is 0 until the user confirms a selection, so a
// previously answered question can be revisited with its choice preserved.
type Likert struct {
	Statement string
	Options   []string
	Cursor    int
	Chosen    int // 1-based, 0 means not yet answered
}

// NewLikert creates a selector for one statement. A previous answer
// (1-based, 0 for none) positions the cursor on the earlier choice.
func NewLikert(statement string, options []string, previous int) Likert {
	cursor := 0
	if previous >= 1 && previous <= len(options) {
		cursor = previous - 1
	}
	return Likert{
		Statement: statement,
		Options:   options,
		Cursor:    cursor,
		Chosen:    previous,
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case "1", "2", "3", "4", "5":
		n := int(kmsg.String()[0] - '0')
		if n >= 1 && n <= len(l.Options) {
			l.Cursor = n - 1
			l.Chosen = n
		}
	case "enter", "space", " ":
		l.Chosen = l.Cursor + 1
	}

	return l, nil
}

// View renders the statement and its options.
func (l Likert) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(l.Statement) + "\n\n"

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if l.Chosen == i+1 {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %d. %s", prefix, marker, i+1, opt)

		switch {
		case l.Chosen == i+1:
			s += theme.Selected.Render(line) + "\n"
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Answered reports whether a choice has been confirmed.
func (l Likert) Answered() bool {
	return l.Chosen != 0
}
