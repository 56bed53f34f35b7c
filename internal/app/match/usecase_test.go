package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/domain/rampage"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 0)
}

func TestUseCase_RunsMatchAndPersists(t *testing.T) {
	matches := &fakeMatchRepo{}
	events := &fakeEventRepo{}
	uc := UseCase{
		Matches:   matches,
		Events:    events,
		TxManager: passTx{},
		Now:       fixedNow,
	}

	out, err := uc.Execute(context.Background(), Request{
		Layout:    [][]string{{"C_R_S", "B", "E", "C_R_E"}},
		TurnLimit: 1,
		Placements: []Placement{
			{X: 1, Y: 0, Command: "RIGHT"},
			{X: 2, Y: 0, Command: "RIGHT"}, // empty tile, must be rejected
		},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if out.FinalScore != 1250 {
		t.Fatalf("expected final score 1250, got %d", out.FinalScore)
	}
	if out.TurnsPlayed != 1 {
		t.Fatalf("expected 1 turn, got %d", out.TurnsPlayed)
	}
	if len(out.Turns) != 2 {
		t.Fatalf("expected initial + 1 turn snapshots, got %d", len(out.Turns))
	}
	if !out.Placements[0].Accepted || out.Placements[1].Accepted {
		t.Fatalf("unexpected placement outcomes: %+v", out.Placements)
	}
	if out.BudgetRemaining != rampage.DefaultStartingBudget-rampage.DefaultCommandCost {
		t.Fatalf("unexpected budget remaining: %d", out.BudgetRemaining)
	}

	if matches.saved == nil || matches.saved.MatchID != out.MatchID {
		t.Fatalf("match record not persisted: %+v", matches.saved)
	}
	if len(events.appended) != 2 {
		t.Fatalf("expected 2 turn events persisted, got %d", len(events.appended))
	}
}

func TestUseCase_EmptyLayoutRejected(t *testing.T) {
	uc := UseCase{Matches: &fakeMatchRepo{}, Events: &fakeEventRepo{}, TxManager: passTx{}}
	_, err := uc.Execute(context.Background(), Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_LayoutErrorSurfaces(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := UseCase{Matches: &fakeMatchRepo{}, Events: &fakeEventRepo{}, TxManager: passTx{}, Metrics: metrics}

	_, err := uc.Execute(context.Background(), Request{
		Layout: [][]string{{"E", "E"}, {"E"}},
	})
	if !errors.Is(err, rampage.ErrRaggedLayout) {
		t.Fatalf("expected ErrRaggedLayout, got %v", err)
	}
	if metrics.failures != 1 {
		t.Fatalf("expected a recorded failure, got %d", metrics.failures)
	}
}

func TestUseCase_PersistErrorRollsUp(t *testing.T) {
	boom := errors.New("boom")
	uc := UseCase{
		Matches:   &fakeMatchRepo{saveErr: boom},
		Events:    &fakeEventRepo{},
		TxManager: passTx{},
		Now:       fixedNow,
	}
	_, err := uc.Execute(context.Background(), Request{
		Layout: [][]string{{"C_R_S", "E", "C_R_E"}},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestUseCase_BroadcastsEveryTurn(t *testing.T) {
	feed := &fakeFeed{}
	uc := UseCase{
		Matches:   &fakeMatchRepo{},
		Events:    &fakeEventRepo{},
		TxManager: passTx{},
		Feed:      feed,
		Now:       fixedNow,
	}

	out, err := uc.Execute(context.Background(), Request{
		Layout:    [][]string{{"C_R_S", "E", "C_R_E"}},
		TurnLimit: 3,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	// Initial snapshot plus two turns (red finishes on turn 2).
	if len(feed.turns) != 3 {
		t.Fatalf("expected 3 broadcasts, got %d", len(feed.turns))
	}
	if feed.matchID != out.MatchID {
		t.Fatalf("broadcast used wrong match id: %q vs %q", feed.matchID, out.MatchID)
	}
}

type fakeMatchRepo struct {
	saved   *ports.MatchRecord
	saveErr error
}

func (r *fakeMatchRepo) Save(_ context.Context, record ports.MatchRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = &record
	return nil
}

func (r *fakeMatchRepo) GetByMatchID(_ context.Context, _ string) (ports.MatchRecord, error) {
	return ports.MatchRecord{}, ports.ErrNotFound
}

func (r *fakeMatchRepo) List(_ context.Context, _ int) ([]ports.MatchRecord, error) {
	return nil, nil
}

type fakeEventRepo struct {
	appended []ports.TurnEvent
}

func (r *fakeEventRepo) Append(_ context.Context, _ string, events []ports.TurnEvent) error {
	r.appended = append(r.appended, events...)
	return nil
}

func (r *fakeEventRepo) ListByMatchID(_ context.Context, _ string, _ int) ([]ports.TurnEvent, error) {
	return nil, ports.ErrNotFound
}

type passTx struct{}

func (passTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	matches  int
	accepted int
	rejected int
	failures int
}

func (m *fakeMetrics) RecordMatch(_, _ int)     { m.matches++ }
func (m *fakeMetrics) RecordPlacementAccepted() { m.accepted++ }
func (m *fakeMetrics) RecordPlacementRejected() { m.rejected++ }
func (m *fakeMetrics) RecordFailure()           { m.failures++ }

type fakeFeed struct {
	matchID string
	turns   []rampage.Snapshot
}

func (f *fakeFeed) BroadcastTurn(matchID string, snap rampage.Snapshot) {
	f.matchID = matchID
	f.turns = append(f.turns, snap)
}
