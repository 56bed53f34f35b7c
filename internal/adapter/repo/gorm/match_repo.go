package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kaijuverse/internal/adapter/repo/gorm/model"
	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/domain/rampage"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return MatchRepository{db: db}
}

func (r MatchRepository) Save(ctx context.Context, rec ports.MatchRecord) error {
	cats, err := json.Marshal(rec.Cats)
	if err != nil {
		return fmt.Errorf("marshal cats: %w", err)
	}
	row := model.MatchResult{
		MatchID:     rec.MatchID,
		FinalScore:  int64(rec.FinalScore),
		TurnsPlayed: int32(rec.TurnsPlayed),
		BedArrivals: int32(rec.BedArrivals),
		Cats:        cats,
		CreatedAt:   rec.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r MatchRepository) GetByMatchID(ctx context.Context, matchID string) (ports.MatchRecord, error) {
	var row model.MatchResult
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("match_id = ?", matchID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.MatchRecord{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.MatchRecord{}, err
	}
	return toMatchRecord(row)
}

func (r MatchRepository) List(ctx context.Context, limit int) ([]ports.MatchRecord, error) {
	q := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.MatchResult
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.MatchRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toMatchRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toMatchRecord(row model.MatchResult) (ports.MatchRecord, error) {
	var cats []rampage.CatView
	if len(row.Cats) > 0 {
		if err := json.Unmarshal(row.Cats, &cats); err != nil {
			return ports.MatchRecord{}, fmt.Errorf("unmarshal cats: %w", err)
		}
	}
	return ports.MatchRecord{
		MatchID:     row.MatchID,
		FinalScore:  int(row.FinalScore),
		TurnsPlayed: int(row.TurnsPlayed),
		BedArrivals: int(row.BedArrivals),
		Cats:        cats,
		CreatedAt:   row.CreatedAt,
	}, nil
}
