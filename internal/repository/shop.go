package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository/dao"
)

type ShopDAO interface {
	FindAll(ctx context.Context) (dao.Result, error)
}

type ShopRepository struct {
	dao ShopDAO
}

func NewShopRepository(dao ShopDAO) *ShopRepository {
	return &ShopRepository{
		dao: dao,
	}
}

func (r *ShopRepository) FindAll(ctx context.Context) ([]record.Record, error) {
	res, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return toRecords(res)
}
