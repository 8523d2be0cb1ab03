package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/router"
	"github.com/joshtsang/fopo/internal/screen"
	"github.com/joshtsang/fopo/internal/screens/survey"
	"github.com/joshtsang/fopo/internal/ui/layout"
	"github.com/joshtsang/fopo/internal/ui/theme"
)

const intro = `FOPO — fear of other people's opinions — is the quiet habit of
scanning for approval before you act. This short self-assessment
asks about ten everyday situations and takes about three minutes.

There are no right answers. Answer with what you actually do,
not what you wish you did.`

// WelcomeScreen introduces the assessment and starts it on Enter.
type WelcomeScreen struct {
	deps survey.Deps
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New(deps survey.Deps) *WelcomeScreen {
	return &WelcomeScreen{deps: deps}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		deps := w.deps
		return w, func() tea.Msg {
			return router.PushScreenMsg{Screen: survey.New(deps)}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("How much do other people's opinions run your life?")
	sections = append(sections, title, "")

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-12, 64)).
		Render(intro)
	sections = append(sections, body, "")

	count := theme.Subtitle.Render(fmt.Sprintf("%d questions · scored 1 to 5", form.QuestionCount))
	sections = append(sections, count, "")

	sections = append(sections, theme.Hint.Render("press Enter to begin"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
