package quiz

import (
	"math/rand"
	"testing"

	"github.com/abhisek/pylearn/internal/tutor"
)

func TestBankTopicsStableOrder(t *testing.T) {
	first := BankTopics(tutor.LevelBeginner)
	if len(first) == 0 {
		t.Fatal("beginner bank is empty")
	}
	for i := 0; i < 5; i++ {
		again := BankTopics(tutor.LevelBeginner)
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("topic order unstable: %v vs %v", first, again)
			}
		}
	}
}

func TestFromBankSkipsAsked(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	level := tutor.LevelBeginner
	topic := "Variables & Data Types"

	var asked []string
	for {
		q := FromBank(level, topic, asked, rng)
		if q == nil {
			break
		}
		for _, prev := range asked {
			if prev == q.Text {
				t.Fatalf("question repeated: %q", q.Text)
			}
		}
		asked = append(asked, q.Text)
	}

	if len(asked) != len(bank[level][topic]) {
		t.Errorf("asked %d questions, bank has %d", len(asked), len(bank[level][topic]))
	}
}

func TestFromBankUnknownTopic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if q := FromBank(tutor.LevelBeginner, "Metaclasses", nil, rng); q != nil {
		t.Errorf("expected nil for unknown topic, got %+v", q)
	}
}

func TestShuffleKeepsCorrectAnswer(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		q := FromBank(tutor.LevelAdvanced, "Generators", nil, rng)
		if q == nil {
			t.Fatal("no question from bank")
		}
		if q.Options[q.Correct] != "Generator iterator" {
			t.Fatalf("seed %d: correct index points at %q", seed, q.Options[q.Correct])
		}
	}
}

func TestBankQuestionsWellFormed(t *testing.T) {
	for level, topics := range bank {
		for topic, questions := range topics {
			for _, q := range questions {
				if err := validate(&Question{
					Text:        q.Text,
					Options:     q.Options,
					Correct:     q.Correct,
					Explanation: q.Explanation,
				}); err != nil {
					t.Errorf("%s/%s: %v", level, topic, err)
				}
			}
		}
	}
}
