package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/scoring"
)

// Reflection is a short personalised follow-up to an assessment result.
type Reflection struct {
	Summary       string   `json:"summary"`
	Encouragement string   `json:"encouragement"`
	Practices     []string `json:"practices"`
}

// reflectionSchema constrains the model output to the Reflection shape.
var reflectionSchema = &Schema{
	Name:        "fopo-reflection",
	Description: "A short personalised reflection on a FOPO assessment result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences reflecting the person's specific answer pattern back to them.",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One warm, non-judgmental sentence of encouragement.",
			},
			"practices": map[string]any{
				"type":        "array",
				"description": "Two to four small, concrete practices tailored to the answers.",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{"summary", "encouragement", "practices"},
	},
}

const systemPrompt = `You are a thoughtful, warm coach helping someone understand
their FOPO (fear of other people's opinions) self-assessment. Be specific to
their answers, never clinical, never diagnostic. Keep everything short.`

// Service generates reflections on completed assessments.
type Service struct {
	provider Provider
}

// NewService creates a reflection service over the given provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Generate asks the model for a reflection on one completed assessment.
// The snapshot must be complete; unanswered questions are skipped in the
// prompt rather than invented.
func (s *Service) Generate(ctx context.Context, snap form.Snapshot, score int, tier scoring.Tier) (*Reflection, error) {
	req := Request{
		System:      systemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildPrompt(snap, score, tier)}},
		Schema:      reflectionSchema,
		MaxTokens:   600,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate reflection: %w", err)
	}

	var r Reflection
	if err := json.Unmarshal(resp.Content, &r); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &r, nil
}

// buildPrompt renders the answers into a compact plain-text summary.
func buildPrompt(snap form.Snapshot, score int, tier scoring.Tier) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total score: %d of %d (%s).\n\nAnswers:\n", score, scoring.MaxScore, tier.Label())
	for _, q := range form.Questions() {
		v := snap.Answers[q.Number-1]
		if v == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %q — %s\n", q.Text, form.OptionLabels[v-1])
	}

	if len(snap.SelfValues) > 0 {
		fmt.Fprintf(&b, "\nTheir sense of self-worth comes from: %s", strings.Join(snap.SelfValues, ", "))
		if snap.SelfValueOther != "" {
			fmt.Fprintf(&b, ", and: %s", snap.SelfValueOther)
		}
		b.WriteString(".\n")
	}

	if snap.Beliefs != "" {
		fmt.Fprintf(&b, "\nIn their own words, what they believe in: %s\n", snap.Beliefs)
	}

	b.WriteString("\nWrite the reflection for this person.")
	return b.String()
}
