package form

// QuestionCount is the number of required scored questions.
const QuestionCount = 10

// MinOptionValue and MaxOptionValue bound the value of a single answer.
const (
	MinOptionValue = 1
	MaxOptionValue = 5
)

// Question is one scored item of the assessment. Number is 1-based.
type Question struct {
	Number int
	Text   string
}

// OptionLabels maps answer values 1..5 to their display labels.
var OptionLabels = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}

// Questions returns the ten scored items in presentation order.
func Questions() []Question {
	return []Question{
		{1, "I change my opinion to match what the people around me think."},
		{2, "Before making a decision, I worry about how others will judge it."},
		{3, "I replay conversations in my head, wondering what people thought of me."},
		{4, "I avoid sharing my work publicly because someone might criticize it."},
		{5, "Praise from others matters more to me than my own satisfaction."},
		{6, "I find it hard to say no because I don't want to disappoint anyone."},
		{7, "I keep checking how people react to things I say or post."},
		{8, "Criticism, even the constructive kind, stays with me for days."},
		{9, "I hold back questions and ideas in groups to avoid looking foolish."},
		{10, "My mood depends on how other people respond to me."},
	}
}

// SelfValueTags returns the categorical choices for the "where does your
// sense of self-worth come from" multi-select. An extra free-text "other"
// field accompanies these.
func SelfValueTags() []string {
	return []string{
		"My career and achievements",
		"My relationships",
		"My appearance",
		"My abilities and skills",
		"My values and integrity",
		"My creativity",
	}
}
