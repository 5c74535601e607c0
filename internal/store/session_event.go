package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pylearn/ent"
	"github.com/abhisek/pylearn/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetAction(data.Action).
		SetSkillLevel(data.SkillLevel).
		SetTurns(data.Turns).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, e := range rows {
		out = append(out, SessionSummary{
			SessionID:    e.SessionID,
			Mode:         e.Mode,
			SkillLevel:   e.SkillLevel,
			Turns:        e.Turns,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return out, nil
}
