package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/record"
)

type fakeTreasureRepo struct {
	calls    int
	query    domain.TreasureQuery
	records  []record.Record
	record   record.Record
	err      error
	deleted  int
	priceFor int
}

func (f *fakeTreasureRepo) FindAll(_ context.Context, q domain.TreasureQuery) ([]record.Record, error) {
	f.calls++
	f.query = q
	return f.records, f.err
}

func (f *fakeTreasureRepo) Create(context.Context, domain.Treasure) (record.Record, error) {
	f.calls++
	return f.record, f.err
}

func (f *fakeTreasureRepo) UpdatePrice(_ context.Context, id int, _ float64) (record.Record, error) {
	f.calls++
	f.priceFor = id
	return f.record, f.err
}

func (f *fakeTreasureRepo) Delete(_ context.Context, id int) error {
	f.calls++
	f.deleted = id
	return f.err
}

func goldRecord() record.Record {
	rec := record.New()
	rec.Set("treasure_id", int64(2))
	rec.Set("colour", "gold")
	return rec
}

func TestTreasureService_ListTreasures(t *testing.T) {
	repo := &fakeTreasureRepo{records: []record.Record{goldRecord()}}
	svc := NewTreasureService(repo)

	got, err := svc.ListTreasures(context.Background(), "treasure_name", "DESC", "gold")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, domain.TreasureQuery{
		SortBy:    domain.SortByTreasureName,
		Order:     domain.OrderDesc,
		Colour:    domain.ColourGold,
		HasColour: true,
	}, repo.query)
}

func TestTreasureService_ListTreasures_InvalidParamsSkipStore(t *testing.T) {
	tests := []struct {
		name, sortBy, order, colour, param string
	}{
		{name: "sort column", sortBy: "shop_id", param: "sort_by"},
		{name: "order", order: "random", param: "order"},
		{name: "colour", colour: "pink", param: "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTreasureRepo{}
			svc := NewTreasureService(repo)

			_, err := svc.ListTreasures(context.Background(), tt.sortBy, tt.order, tt.colour)
			var paramErr *domain.InvalidParameterError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tt.param, paramErr.Parameter)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestTreasureService_ListTreasures_ColourWithoutMatches(t *testing.T) {
	svc := NewTreasureService(&fakeTreasureRepo{records: []record.Record{}})

	_, err := svc.ListTreasures(context.Background(), "", "", "silver")
	var paramErr *domain.InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "colour", paramErr.Parameter)
	assert.Equal(t, "silver", paramErr.Value)
}

func TestTreasureService_ListTreasures_EmptyWithoutColourIsFine(t *testing.T) {
	svc := NewTreasureService(&fakeTreasureRepo{records: []record.Record{}})

	got, err := svc.ListTreasures(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTreasureService_ListTreasures_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewTreasureService(&fakeTreasureRepo{err: storeErr})

	_, err := svc.ListTreasures(context.Background(), "", "", "")
	assert.ErrorIs(t, err, storeErr)
}

func TestTreasureService_CreateTreasure(t *testing.T) {
	repo := &fakeTreasureRepo{record: goldRecord()}
	svc := NewTreasureService(repo)

	got, err := svc.CreateTreasure(context.Background(), domain.Treasure{Name: "' OR '1'='1", Colour: domain.ColourGold})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, []string{"treasure_id", "colour"}, got.Keys())
}

func TestTreasureService_UpdateTreasurePrice_NotFound(t *testing.T) {
	repo := &fakeTreasureRepo{err: ErrTreasureNotFound}
	svc := NewTreasureService(repo)

	_, err := svc.UpdateTreasurePrice(context.Background(), 500, 12)
	assert.ErrorIs(t, err, ErrTreasureNotFound)
	assert.Equal(t, 500, repo.priceFor)
}

func TestTreasureService_DeleteTreasure(t *testing.T) {
	repo := &fakeTreasureRepo{}
	svc := NewTreasureService(repo)

	require.NoError(t, svc.DeleteTreasure(context.Background(), 4))
	assert.Equal(t, 4, repo.deleted)
}
