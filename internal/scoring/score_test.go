package scoring

import (
	"testing"

	"github.com/joshtsang/fopo/internal/form"
)

func snapshotWith(values []int) form.Snapshot {
	st := form.NewState()
	for i, v := range values {
		st.SetAnswer(i+1, v)
	}
	return st.Snapshot()
}

func TestCompleteRejectsPartialAnswers(t *testing.T) {
	snap := snapshotWith([]int{1, 2, 3, 4, 5, 1, 2, 3, 4}) // nine of ten
	if _, ok := Complete(snap); ok {
		t.Fatal("Complete accepted a snapshot with an unanswered question")
	}
}

func TestScoreSums(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"all ones", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 10},
		{"all fives", []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, 50},
		{"mixed", []int{5, 5, 5, 5, 4, 4, 3, 3, 3, 3}, 40},
		{"ascending", []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Complete(snapshotWith(tt.values))
			if !ok {
				t.Fatal("Complete rejected a full answer set")
			}
			if got := c.Score(); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreRangeConstants(t *testing.T) {
	if MinScore != 10 || MaxScore != 50 {
		t.Errorf("score range = [%d, %d], want [10, 50]", MinScore, MaxScore)
	}
}
