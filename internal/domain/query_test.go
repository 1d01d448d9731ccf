package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortColumn(t *testing.T) {
	tests := []struct {
		in      string
		want    SortColumn
		wantErr bool
	}{
		{in: "", want: SortByAge},
		{in: "age", want: SortByAge},
		{in: "cost_at_auction", want: SortByCostAtAuction},
		{in: "treasure_name", want: SortByTreasureName},
		{in: "colour", wantErr: true},
		{in: "AGE", wantErr: true},
		{in: "age; DROP TABLE treasures", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortColumn(tt.in)
			if tt.wantErr {
				var paramErr *InvalidParameterError
				require.ErrorAs(t, err, &paramErr)
				assert.Equal(t, "sort_by", paramErr.Parameter)
				assert.Equal(t, tt.in, paramErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{in: "", want: OrderAsc},
		{in: "asc", want: OrderAsc},
		{in: "ASC", want: OrderAsc},
		{in: "desc", want: OrderDesc},
		{in: "Desc", want: OrderDesc},
		{in: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOrder(tt.in)
			if tt.wantErr {
				var paramErr *InvalidParameterError
				require.ErrorAs(t, err, &paramErr)
				assert.Equal(t, "order", paramErr.Parameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColour(t *testing.T) {
	c, ok, err := ParseColour("")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, c)

	for _, p := range Palette {
		c, ok, err = ParseColour(string(p))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, p, c)
	}

	_, _, err = ParseColour("pink")
	var paramErr *InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "colour", paramErr.Parameter)
	assert.Equal(t, "pink", paramErr.Value)
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 13)
	assert.False(t, Colour("Gold").Valid())
}

func TestNewTreasureQuery(t *testing.T) {
	q, err := NewTreasureQuery("", "", "")
	require.NoError(t, err)
	assert.Equal(t, TreasureQuery{SortBy: SortByAge, Order: OrderAsc}, q)

	q, err = NewTreasureQuery("cost_at_auction", "DESC", "gold")
	require.NoError(t, err)
	assert.Equal(t, TreasureQuery{SortBy: SortByCostAtAuction, Order: OrderDesc, Colour: ColourGold, HasColour: true}, q)

	_, err = NewTreasureQuery("age", "up", "gold")
	var paramErr *InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "order", paramErr.Parameter)
}
