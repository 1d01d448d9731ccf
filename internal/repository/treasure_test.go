package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository/dao"
)

type fakeTreasureDAO struct {
	filter   dao.TreasureFilter
	inserted dao.NewTreasure
	result   dao.Result
	err      error
}

func (f *fakeTreasureDAO) FindAll(_ context.Context, filter dao.TreasureFilter) (dao.Result, error) {
	f.filter = filter
	return f.result, f.err
}

func (f *fakeTreasureDAO) Insert(_ context.Context, t dao.NewTreasure) (dao.Result, error) {
	f.inserted = t
	return f.result, f.err
}

func (f *fakeTreasureDAO) UpdatePrice(context.Context, int, float64) (dao.Result, error) {
	return f.result, f.err
}

func (f *fakeTreasureDAO) Delete(context.Context, int) error {
	return f.err
}

func TestTreasureRepository_FindAll(t *testing.T) {
	fake := &fakeTreasureDAO{result: dao.Result{
		Columns: []string{"treasure_id", "colour"},
		Rows:    [][]any{{int64(2), "gold"}, {int64(19), "gold"}},
	}}
	repo := NewTreasureRepository(fake)

	records, err := repo.FindAll(context.Background(), domain.TreasureQuery{
		SortBy:    domain.SortByCostAtAuction,
		Order:     domain.OrderDesc,
		Colour:    domain.ColourGold,
		HasColour: true,
	})
	require.NoError(t, err)
	assert.Equal(t, dao.TreasureFilter{SortColumn: "cost_at_auction", Descending: true, Colour: "gold"}, fake.filter)

	b, err := json.Marshal(records)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"treasure_id":2,"colour":"gold"},{"treasure_id":19,"colour":"gold"}]`, string(b))
}

func TestTreasureRepository_FindAll_NoColourFilter(t *testing.T) {
	fake := &fakeTreasureDAO{result: dao.Result{Columns: []string{"treasure_id"}, Rows: [][]any{}}}
	repo := NewTreasureRepository(fake)

	records, err := repo.FindAll(context.Background(), domain.TreasureQuery{SortBy: domain.SortByAge, Order: domain.OrderAsc})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, dao.TreasureFilter{SortColumn: "age"}, fake.filter)
}

func TestTreasureRepository_Create(t *testing.T) {
	fake := &fakeTreasureDAO{result: dao.Result{
		Columns: []string{"treasure_id", "treasure_name"},
		Rows:    [][]any{{int64(27), "new"}},
	}}
	repo := NewTreasureRepository(fake)

	rec, err := repo.Create(context.Background(), domain.Treasure{
		Name: "new", Colour: domain.ColourOnyx, Age: 3, CostAtAuction: 1.5, ShopID: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, dao.NewTreasure{TreasureName: "new", Colour: "onyx", Age: 3, CostAtAuction: 1.5, ShopID: 4}, fake.inserted)

	id, _ := rec.Get("treasure_id")
	assert.Equal(t, int64(27), id)
}

func TestTreasureRepository_UpdatePrice_NotFound(t *testing.T) {
	repo := NewTreasureRepository(&fakeTreasureDAO{err: dao.ErrTreasureNotFound})

	_, err := repo.UpdatePrice(context.Background(), 500, 10)
	assert.ErrorIs(t, err, ErrTreasureNotFound)
}

func TestTreasureRepository_Delete(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := NewTreasureRepository(&fakeTreasureDAO{err: storeErr})

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), storeErr)
}
