package inmemory

import (
	"sync"
)

type Snapshot struct {
	MatchesTotal       uint64 `json:"matches_total"`
	MatchFailures      uint64 `json:"match_failures"`
	TurnsPlayedTotal   uint64 `json:"turns_played_total"`
	ScoreTotal         uint64 `json:"score_total"`
	BestScore          int    `json:"best_score"`
	PlacementsAccepted uint64 `json:"placements_accepted"`
	PlacementsRejected uint64 `json:"placements_rejected"`
}

type Recorder struct {
	mu                 sync.Mutex
	matches            uint64
	failures           uint64
	turnsPlayed        uint64
	scoreTotal         uint64
	bestScore          int
	placementsAccepted uint64
	placementsRejected uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordMatch(finalScore, turnsPlayed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches++
	r.turnsPlayed += uint64(turnsPlayed)
	if finalScore > 0 {
		r.scoreTotal += uint64(finalScore)
	}
	if r.matches == 1 || finalScore > r.bestScore {
		r.bestScore = finalScore
	}
}

func (r *Recorder) RecordPlacementAccepted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placementsAccepted++
}

func (r *Recorder) RecordPlacementRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placementsRejected++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		MatchesTotal:       r.matches,
		MatchFailures:      r.failures,
		TurnsPlayedTotal:   r.turnsPlayed,
		ScoreTotal:         r.scoreTotal,
		BestScore:          r.bestScore,
		PlacementsAccepted: r.placementsAccepted,
		PlacementsRejected: r.placementsRejected,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
