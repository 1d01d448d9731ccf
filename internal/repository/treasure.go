package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository/dao"
)

var (
	ErrTreasureNotFound = dao.ErrTreasureNotFound
)

type TreasureDAO interface {
	FindAll(ctx context.Context, filter dao.TreasureFilter) (dao.Result, error)
	Insert(ctx context.Context, t dao.NewTreasure) (dao.Result, error)
	UpdatePrice(ctx context.Context, id int, cost float64) (dao.Result, error)
	Delete(ctx context.Context, id int) error
}

type TreasureRepository struct {
	dao TreasureDAO
}

func NewTreasureRepository(dao TreasureDAO) *TreasureRepository {
	return &TreasureRepository{
		dao: dao,
	}
}

func (r *TreasureRepository) FindAll(ctx context.Context, q domain.TreasureQuery) ([]record.Record, error) {
	filter := dao.TreasureFilter{
		SortColumn: string(q.SortBy),
		Descending: q.Order == domain.OrderDesc,
	}
	if q.HasColour {
		filter.Colour = string(q.Colour)
	}

	res, err := r.dao.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return toRecords(res)
}

func (r *TreasureRepository) Create(ctx context.Context, t domain.Treasure) (record.Record, error) {
	res, err := r.dao.Insert(ctx, dao.NewTreasure{
		TreasureName:  t.Name,
		Colour:        string(t.Colour),
		Age:           t.Age,
		CostAtAuction: t.CostAtAuction,
		ShopID:        t.ShopID,
	})
	if err != nil {
		return record.Record{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return toSingleRecord(res)
}

func (r *TreasureRepository) UpdatePrice(ctx context.Context, id int, cost float64) (record.Record, error) {
	res, err := r.dao.UpdatePrice(ctx, id, cost)
	if err != nil {
		return record.Record{}, fmt.Errorf("r.dao.UpdatePrice -> %w", err)
	}

	return toSingleRecord(res)
}

func (r *TreasureRepository) Delete(ctx context.Context, id int) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func toRecords(res dao.Result) ([]record.Record, error) {
	records, err := record.MapRows(res.Columns, res.Rows)
	if err != nil {
		return nil, fmt.Errorf("record.MapRows -> %w", err)
	}

	return records, nil
}

func toSingleRecord(res dao.Result) (record.Record, error) {
	records, err := toRecords(res)
	if err != nil {
		return record.Record{}, err
	}
	if len(records) != 1 {
		return record.Record{}, fmt.Errorf("expected 1 row, got %d", len(records))
	}

	return records[0], nil
}
