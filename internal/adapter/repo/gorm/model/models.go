package model

import "time"

type MatchResult struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	MatchID     string `gorm:"column:match_id;uniqueIndex;size:64"`
	FinalScore  int64  `gorm:"column:final_score"`
	TurnsPlayed int32  `gorm:"column:turns_played"`
	BedArrivals int32  `gorm:"column:bed_arrivals"`
	Cats        []byte `gorm:"column:cats;type:jsonb"`
	CreatedAt   time.Time
}

func (MatchResult) TableName() string { return "match_results" }

type TurnEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	MatchID    string `gorm:"column:match_id;index;size:64"`
	Turn       int32  `gorm:"column:turn"`
	OccurredAt time.Time
	Snapshot   []byte `gorm:"column:snapshot;type:jsonb"`
}

func (TurnEvent) TableName() string { return "turn_events" }
