package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/sqlsafe"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository"
)

var (
	ErrTreasureNotFound = repository.ErrTreasureNotFound
)

type TreasureRepository interface {
	FindAll(ctx context.Context, q domain.TreasureQuery) ([]record.Record, error)
	Create(ctx context.Context, t domain.Treasure) (record.Record, error)
	UpdatePrice(ctx context.Context, id int, cost float64) (record.Record, error)
	Delete(ctx context.Context, id int) error
}

type TreasureService struct {
	repo TreasureRepository
}

func NewTreasureService(repo TreasureRepository) *TreasureService {
	return &TreasureService{
		repo: repo,
	}
}

// ListTreasures validates the raw query values before anything reaches the store.
// A colour filter that matches nothing is reported as an invalid colour.
func (s *TreasureService) ListTreasures(ctx context.Context, sortBy, order, colour string) ([]record.Record, error) {
	q, err := domain.NewTreasureQuery(sortBy, order, colour)
	if err != nil {
		return nil, err
	}

	treasures, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	if q.HasColour && len(treasures) == 0 {
		return nil, &domain.InvalidParameterError{Parameter: "colour", Value: colour}
	}

	return treasures, nil
}

func (s *TreasureService) CreateTreasure(ctx context.Context, t domain.Treasure) (record.Record, error) {
	if finding := sqlsafe.Inspect("treasure_name", t.Name); finding != nil {
		zap.L().Warn("suspicious value in treasure payload",
			zap.String("parameter", finding.Parameter),
			zap.String("fingerprint", finding.Fingerprint),
		)
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return record.Record{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TreasureService) UpdateTreasurePrice(ctx context.Context, id int, cost float64) (record.Record, error) {
	updated, err := s.repo.UpdatePrice(ctx, id, cost)
	if err != nil {
		return record.Record{}, fmt.Errorf("s.repo.UpdatePrice -> %w", err)
	}

	return updated, nil
}

func (s *TreasureService) DeleteTreasure(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
