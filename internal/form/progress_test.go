package form

import "testing"

func answeredSnapshot(n int, email string) Snapshot {
	st := NewState()
	for i := 1; i <= n; i++ {
		st.SetAnswer(i, 3)
	}
	st.SetEmail(email)
	return st.Snapshot()
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name        string
		answered    int
		email       string
		wantPercent int
		wantDenom   int
		wantSubmit  bool
	}{
		{"empty form", 0, "", 0, 10, false},
		{"half answered", 5, "", 50, 10, false},
		{"all answered no email", 10, "", 100, 10, false},
		{"email only", 0, "a@b.com", 9, 11, false},
		{"nine answered with email", 9, "a@b.com", 91, 11, false},
		{"complete", 10, "a@b.com", 100, 11, true},
		{"complete invalid email still counts", 10, "not-an-email", 100, 11, true},
		{"whitespace email is absent", 0, "   ", 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(answeredSnapshot(tt.answered, tt.email))
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.wantPercent)
			}
			if got.Denominator != tt.wantDenom {
				t.Errorf("Denominator = %d, want %d", got.Denominator, tt.wantDenom)
			}
			if got.CanSubmit != tt.wantSubmit {
				t.Errorf("CanSubmit = %v, want %v", got.CanSubmit, tt.wantSubmit)
			}
		})
	}
}

func TestProgressMonotonic(t *testing.T) {
	prev := -1
	for n := 0; n <= QuestionCount; n++ {
		p := ComputeProgress(answeredSnapshot(n, "a@b.com"))
		if p.Percent < prev {
			t.Fatalf("percent decreased: %d questions -> %d%%, previous %d%%", n, p.Percent, prev)
		}
		prev = p.Percent
	}
}
