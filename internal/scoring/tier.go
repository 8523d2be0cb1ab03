package scoring

// Tier is the classification bucket for a total score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classification thresholds. The three buckets partition the whole score
// range: <=20 low, 21..35 medium, >=36 high.
const (
	lowMax    = 20
	mediumMax = 35
)

// Classify maps a total score to its tier.
func Classify(score int) Tier {
	switch {
	case score <= lowMax:
		return TierLow
	case score <= mediumMax:
		return TierMedium
	default:
		return TierHigh
	}
}

// Label returns the short display label for the tier.
func (t Tier) Label() string {
	switch t {
	case TierLow:
		return "Low FOPO"
	case TierMedium:
		return "Moderate FOPO"
	case TierHigh:
		return "High FOPO"
	default:
		return string(t)
	}
}

// Description returns the interpretation paragraph for the tier.
func (t Tier) Description() string {
	switch t {
	case TierLow:
		return "Other people's opinions don't weigh heavily on you. You can make " +
			"decisions with relative confidence and aren't easily swayed by how " +
			"you might be judged, which points to solid inner confidence and autonomy."
	case TierMedium:
		return "You care about what others think in some situations, which is " +
			"entirely normal. You've found a workable balance between autonomy and " +
			"social approval, though at times the opinions of others still pull on " +
			"your decisions."
	case TierHigh:
		return "You are strongly affected by what others think of you, and that " +
			"can limit how freely you express yourself and decide. It doesn't mean " +
			"something is wrong with you — it means you care deeply about your " +
			"relationships, which is a strength in itself."
	default:
		return ""
	}
}

// Suggestions returns the growth guidance bullet list for the tier.
func (t Tier) Suggestions() []string {
	switch t {
	case TierLow:
		return []string{
			"Keep the balance: stay open to constructive feedback even though you don't need it for confidence.",
			"Use your self-assurance to take the lead in groups.",
			"Share what works for you with friends who worry more about being judged.",
			"Stay curious — confidence is easiest to keep while you keep learning.",
		}
	case TierMedium:
		return []string{
			"Practice noticing the moments you start optimizing for other people's approval, and pause there.",
			"Reframe the question from \"what will they think\" to \"does this matter to me\".",
			"Invest in interests that are yours alone; they anchor self-worth internally.",
			"Spend more time with people who support you and less with habitual critics.",
			"Keep a short journal of decisions you made for yourself.",
		}
	case TierHigh:
		return []string{
			"Draw a line between constructive criticism and noise — not every opinion deserves attention.",
			"Give yourself one genuine affirmation a day; build an inner supportive voice.",
			"Run small experiments in safe settings where you express what you actually think.",
			"Challenge the thought that everyone is evaluating you; mostly they are not.",
			"Talk it over with someone you trust, or with a counselor.",
			"Set small goals and let each one add a little confidence.",
		}
	default:
		return nil
	}
}
