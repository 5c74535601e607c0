package quiz

import "github.com/abhisek/pylearn/internal/tutor"

// Round tracks score and asked questions across one quiz sitting.
type Round struct {
	Topic string
	Level tutor.SkillLevel

	asked    []string
	correct  int
	answered int
}

// NewRound starts a round for one topic and level.
func NewRound(topic string, level tutor.SkillLevel) *Round {
	return &Round{Topic: topic, Level: level}
}

// Check reports whether choice answers q correctly.
func Check(q *Question, choice int) bool {
	return choice == q.Correct
}

// Record scores one answered question and remembers its text for dedup.
// It returns whether the choice was correct.
func (r *Round) Record(q *Question, choice int) bool {
	ok := Check(q, choice)
	r.answered++
	if ok {
		r.correct++
	}
	r.asked = append(r.asked, q.Text)
	return ok
}

// Score returns correct answers and total answered so far.
func (r *Round) Score() (correct, answered int) {
	return r.correct, r.answered
}

// Asked returns the texts of questions already asked this round.
func (r *Round) Asked() []string {
	out := make([]string, len(r.asked))
	copy(out, r.asked)
	return out
}
