package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kaijuverse/internal/adapter/repo/gorm/model"
	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/domain/rampage"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return EventRepository{db: db}
}

func (r EventRepository) Append(ctx context.Context, matchID string, events []ports.TurnEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.TurnEvent, 0, len(events))
	for _, ev := range events {
		snap, err := json.Marshal(ev.Snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		rows = append(rows, model.TurnEvent{
			MatchID:    matchID,
			Turn:       int32(ev.Turn),
			OccurredAt: ev.OccurredAt,
			Snapshot:   snap,
		})
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

func (r EventRepository) ListByMatchID(ctx context.Context, matchID string, limit int) ([]ports.TurnEvent, error) {
	q := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("match_id = ?", matchID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "turn"}})
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.TurnEvent
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]ports.TurnEvent, 0, len(rows))
	for _, row := range rows {
		var snap rampage.Snapshot
		if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot: %w", err)
		}
		out = append(out, ports.TurnEvent{
			Turn:       int(row.Turn),
			OccurredAt: row.OccurredAt,
			Snapshot:   snap,
		})
	}
	return out, nil
}
