package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func TestRunRows(t *testing.T) {
	runs := []storage.RunRecord{{
		Score:     4200,
		Level:     3,
		Accuracy:  0.4,
		Duration:  95 * time.Second,
		CreatedAt: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC),
	}}
	rows := runRows(runs)
	want := []string{"4200", "3", "40%", "1:35", "Mar 05 14:07"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("asteroids", 900); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(storage.RunRecord{GameID: "asteroids_practice", Score: 50, Practice: true}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.rows) != 1 || m.rows[0][1] != "900" {
		t.Fatalf("high score rows = %v", m.rows)
	}

	next, _ := m.Update(runeKey('l'))
	m = next.(ScoreboardModel)
	if m.current().Title != "Recent Runs" || len(m.rows) != 0 {
		t.Errorf("view %q rows = %v", m.current().Title, m.rows)
	}

	next, _ = m.Update(runeKey('l'))
	m = next.(ScoreboardModel)
	if len(m.rows) != 1 || m.rows[0][0] != "50" {
		t.Errorf("practice rows = %v", m.rows)
	}

	next, _ = m.Update(runeKey('b'))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}
}
