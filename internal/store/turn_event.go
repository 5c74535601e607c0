package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pylearn/ent"
	"github.com/abhisek/pylearn/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetRole(data.Role).
		SetContent(data.Content).
		SetSkillLevel(data.SkillLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) TurnCount(ctx context.Context, mode, role string) (int, error) {
	n, err := r.client.TurnEvent.Query().
		Where(turnevent.Mode(mode), turnevent.Role(role)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count turns: %w", err)
	}
	return n, nil
}

func (r *eventRepo) SessionTurns(ctx context.Context, sessionID string) ([]Turn, error) {
	rows, err := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session turns: %w", err)
	}

	out := make([]Turn, 0, len(rows))
	for _, e := range rows {
		out = append(out, Turn{
			Role:      e.Role,
			Content:   e.Content,
			Timestamp: e.Timestamp,
		})
	}
	return out, nil
}
