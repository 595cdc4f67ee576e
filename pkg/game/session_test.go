package game

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/event"
)

func testConfig(t *testing.T, missions int) *config.MissionConfig {
	t.Helper()
	cfg := config.Default()
	for i := 0; i < missions; i++ {
		cfg.Missions = append(cfg.Missions, config.Mission{
			Route: [][]int{{0, 0}, {0, 1}},
			Enemy: config.EnemyStats{Life: 10, Speed: 2, Reward: 20},
		})
	}
	return cfg
}

func TestSessionScoreFromKillEvents(t *testing.T) {
	s := NewSession(testConfig(t, 1), 1, 0)

	s.Events.Emit(event.Event{Type: event.EvtEnemyKilled})
	s.Events.Emit(event.Event{Type: event.EvtEnemyKilled})
	s.Events.Dispatch()

	if s.Score() != 200 {
		t.Errorf("Expected score 200, got %d", s.Score())
	}
}

func TestSessionAdvanceCarriesMoney(t *testing.T) {
	s := NewSession(testConfig(t, 2), 1, 0)
	if s.Money() != 50 {
		t.Fatalf("Expected initial money 50, got %d", s.Money())
	}

	if !s.Advance(130) {
		t.Fatal("Expected a second mission")
	}
	if s.MissionIndex() != 1 || s.Money() != 130 {
		t.Errorf("Expected mission 1 with money 130, got %d and %d", s.MissionIndex(), s.Money())
	}
	if s.Advance(150) {
		t.Error("Expected missions to be exhausted")
	}
}

func TestSessionResetAndFinish(t *testing.T) {
	s := NewSession(testConfig(t, 2), 1, 1)
	var gameOver *event.GameOver
	s.Events.On(event.EvtGameOver, func(e event.Event) {
		p := e.Payload.(event.GameOver)
		gameOver = &p
	})

	s.Events.Emit(event.Event{Type: event.EvtEnemyKilled})
	s.Events.Dispatch()
	s.Finish(OutcomeDefeat)
	s.Events.Dispatch()

	if gameOver == nil || gameOver.Victory || gameOver.Score != 100 {
		t.Errorf("Unexpected game over payload %+v", gameOver)
	}
	if s.Outcome() != OutcomeDefeat {
		t.Errorf("Expected defeat, got %s", s.Outcome())
	}

	s.Reset()
	if s.Score() != 0 || s.Outcome() != OutcomeNone || s.MissionIndex() != 1 {
		t.Errorf("Reset should restore start state, got score %d outcome %s mission %d", s.Score(), s.Outcome(), s.MissionIndex())
	}
}

func TestSessionStartMissionOutOfRange(t *testing.T) {
	s := NewSession(testConfig(t, 1), 1, 5)
	if s.MissionIndex() != 0 {
		t.Errorf("Expected out-of-range start mission to fall back to 0, got %d", s.MissionIndex())
	}
}
