package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
)

type ShopRepository interface {
	FindAll(ctx context.Context) ([]record.Record, error)
}

type ShopService struct {
	repo ShopRepository
}

func NewShopService(repo ShopRepository) *ShopService {
	return &ShopService{
		repo: repo,
	}
}

func (s *ShopService) ListShops(ctx context.Context) ([]record.Record, error) {
	shops, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return shops, nil
}
