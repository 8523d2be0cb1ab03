package scoring

import "github.com/joshtsang/fopo/internal/form"

// Score range for a complete answer set: ten questions, values 1..5.
const (
	MinScore = form.QuestionCount * form.MinOptionValue
	MaxScore = form.QuestionCount * form.MaxOptionValue
)

// CompleteAnswers holds a full answer set with every question answered.
// It can only be obtained through Complete, so a Score can never silently
// count a missing answer as zero.
type CompleteAnswers struct {
	values [form.QuestionCount]int
}

// Complete extracts a complete answer set from a snapshot. The second
// return is false when any question is still unanswered.
func Complete(s form.Snapshot) (CompleteAnswers, bool) {
	var c CompleteAnswers
	for i, v := range s.Answers {
		if v == 0 {
			return CompleteAnswers{}, false
		}
		c.values[i] = v
	}
	return c, true
}

// Value returns the answer for question n (1-based).
func (c CompleteAnswers) Value(n int) int {
	return c.values[n-1]
}

// Score sums the answer values. Plain integer addition, no weighting.
func (c CompleteAnswers) Score() int {
	total := 0
	for _, v := range c.values {
		total += v
	}
	return total
}
