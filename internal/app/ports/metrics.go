package ports

type MatchMetrics interface {
	RecordMatch(finalScore, turnsPlayed int)
	RecordPlacementAccepted()
	RecordPlacementRejected()
	RecordFailure()
}
