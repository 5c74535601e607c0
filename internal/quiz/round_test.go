package quiz

import (
	"testing"

	"github.com/abhisek/pylearn/internal/tutor"
)

func TestRoundScoring(t *testing.T) {
	r := NewRound("Lists", tutor.LevelIntermediate)
	q1 := &Question{Text: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 2}
	q2 := &Question{Text: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 0}

	if !r.Record(q1, 2) {
		t.Error("correct choice scored as wrong")
	}
	if r.Record(q2, 3) {
		t.Error("wrong choice scored as correct")
	}

	correct, answered := r.Score()
	if correct != 1 || answered != 2 {
		t.Errorf("score = %d/%d, want 1/2", correct, answered)
	}

	asked := r.Asked()
	if len(asked) != 2 || asked[0] != "q1" || asked[1] != "q2" {
		t.Errorf("asked = %v", asked)
	}
}

func TestBuildDedupLimitsEntries(t *testing.T) {
	prior := []string{"one", "two", "three", "four"}
	got := buildDedup(prior, 2)
	want := "1. three\n2. four"
	if got != want {
		t.Errorf("buildDedup = %q, want %q", got, want)
	}

	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("empty dedup = %q, want None", got)
	}
}
