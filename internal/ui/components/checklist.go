package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/ui/theme"
)

// Checklist is a multi-select list. Space toggles the highlighted item.
type Checklist struct {
	Prompt  string
	Items   []string
	Cursor  int
	checked map[int]bool
}

// NewChecklist creates a checklist with the given items pre-checked.
func NewChecklist(prompt string, items []string, preChecked func(string) bool) Checklist {
	checked := make(map[int]bool, len(items))
	if preChecked != nil {
		for i, item := range items {
			if preChecked(item) {
				checked[i] = true
			}
		}
	}
	return Checklist{
		Prompt:  prompt,
		Items:   items,
		checked: checked,
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling. Toggled reports which item
// changed, or -1 when none did.
func (c Checklist) Update(msg tea.Msg) (Checklist, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, -1
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ", "enter":
		c.checked[c.Cursor] = !c.checked[c.Cursor]
		return c, c.Cursor
	}

	return c, -1
}

// View renders the checklist.
func (c Checklist) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, item := range c.Items {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		marker := "[ ]"
		if c.checked[i] {
			marker = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, item)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		case c.checked[i]:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Checked reports whether the item at i is selected.
func (c Checklist) Checked(i int) bool {
	return c.checked[i]
}
