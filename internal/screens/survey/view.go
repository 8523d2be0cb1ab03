package survey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/ui/components"
	"github.com/joshtsang/fopo/internal/ui/theme"
)

func (s *SurveyScreen) View(width, height int) string {
	var body string
	switch {
	case s.step < form.QuestionCount:
		body = s.renderQuestion()
	case s.step == stepSelfValues:
		body = s.renderSelfValues()
	case s.step == stepBeliefs:
		body = s.renderBeliefs()
	case s.step == stepEmail:
		body = s.renderEmail()
	default:
		body = s.renderReview()
	}

	progress := s.state.Snapshot()
	bar := components.NewProgressBar("", form.ComputeProgress(progress).Percent, true, min(width-8, 60))

	sections := []string{body, "", bar.View()}

	if s.submitting && s.notice == nil {
		sections = append(sections, "", theme.Hint.Render("Sending..."))
	}
	if s.notice != nil {
		sections = append(sections, "", s.notice.View(width))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SurveyScreen) renderQuestion() string {
	counter := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.step+1, form.QuestionCount))
	return counter + "\n\n" + s.likert.View()
}

func (s *SurveyScreen) renderSelfValues() string {
	body := s.checklist.View()
	body += "\n" + theme.Hint.Render("Other:") + " " + s.otherInput.View()
	if s.otherFocused {
		body += "\n" + theme.Hint.Render("(Tab returns to the list)")
	}
	return body
}

func (s *SurveyScreen) renderBeliefs() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Beyond other people's opinions, what do you believe in?")
	hint := theme.Hint.Render("Optional. A sentence or two is plenty.")
	return prompt + "\n" + hint + "\n\n" + s.beliefsInput.View()
}

func (s *SurveyScreen) renderEmail() string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Where should we send your results?")
	return prompt + "\n\n" + s.emailInput.View()
}

func (s *SurveyScreen) renderReview() string {
	snap := s.state.Snapshot()
	p := form.ComputeProgress(snap)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Ready to submit?"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Questions answered: %d of %d\n", snap.AnsweredCount(), form.QuestionCount)
	if snap.EmailPresent() {
		fmt.Fprintf(&b, "Email: %s\n", snap.Email)
	} else {
		b.WriteString("Email: " + theme.Hint.Render("not provided") + "\n")
	}
	if len(snap.SelfValues) > 0 {
		fmt.Fprintf(&b, "Self-worth sources: %s\n", strings.Join(snap.SelfValues, ", "))
	}

	b.WriteString("\n")
	if p.CanSubmit {
		b.WriteString(theme.Selected.Render("▸ Press Enter to submit"))
	} else {
		b.WriteString(theme.Hint.Render("Submit is unavailable until every question is answered and an email is provided."))
	}
	return theme.Card.Render(b.String())
}
