package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetChosenAnswer(data.ChosenAnswer).
		SetCorrect(data.Correct).
		SetGenerated(data.Generated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizAccuracy(ctx context.Context) ([]TopicAccuracy, error) {
	rows, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	type key struct{ topic, difficulty string }
	index := make(map[key]int)
	var out []TopicAccuracy

	for _, e := range rows {
		k := key{e.Topic, e.Difficulty}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, TopicAccuracy{Topic: e.Topic, Difficulty: e.Difficulty})
		}
		out[i].Attempted++
		if e.Correct {
			out[i].Correct++
		}
	}
	return out, nil
}
