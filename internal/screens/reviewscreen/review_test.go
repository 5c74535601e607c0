package reviewscreen

import (
	"testing"
	"time"

	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		severity string
		want     any
	}{
		{"bug", theme.Error},
		{"style", theme.Accent},
		{"clarity", theme.Primary},
		{"unknown", theme.Primary},
	}
	for _, tt := range tests {
		if got := severityColor(tt.severity); got != tt.want {
			t.Errorf("severityColor(%q) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

func TestSpinnerAdvancesWhileWaiting(t *testing.T) {
	s := New(nil, tutor.NewSession(tutor.LevelBeginner), nil)
	s.waiting = true

	updated, cmd := s.Update(spinnerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a follow-up tick command while waiting")
	}
	rs := updated.(*ReviewScreen)
	if rs.spinnerFrame != 1 {
		t.Errorf("spinnerFrame = %d, want 1", rs.spinnerFrame)
	}
}

func TestSpinnerStopsWhenNotWaiting(t *testing.T) {
	s := New(nil, tutor.NewSession(tutor.LevelBeginner), nil)

	_, cmd := s.Update(spinnerTickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no tick command when not waiting")
	}
}
