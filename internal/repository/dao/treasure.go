package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/sqlsafe"
)

var (
	ErrTreasureNotFound = errors.New("treasure not found")
)

var sortableColumns = map[string]bool{
	"age":             true,
	"cost_at_auction": true,
	"treasure_name":   true,
}

const (
	selectTreasuresWithShop = `SELECT treasures.treasure_id, treasures.treasure_name, treasures.colour,
	treasures.age, treasures.cost_at_auction, shops.shop_name
FROM treasures
JOIN shops ON treasures.shop_id = shops.shop_id`

	treasureColumns = `treasure_id, treasure_name, colour, age, cost_at_auction, shop_id`

	insertTreasure = `INSERT INTO treasures (treasure_name, colour, age, cost_at_auction, shop_id)
VALUES (:treasure_name, :colour, :age, :cost_at_auction, :shop_id)
RETURNING ` + treasureColumns

	updateTreasurePrice = `UPDATE treasures SET cost_at_auction = :cost_at_auction
WHERE treasure_id = :treasure_id
RETURNING ` + treasureColumns

	deleteTreasure = `DELETE FROM treasures WHERE treasure_id = :treasure_id`
)

type TreasureFilter struct {
	SortColumn string
	Descending bool
	Colour     string
}

type NewTreasure struct {
	TreasureName  string
	Colour        string
	Age           int
	CostAtAuction float64
	ShopID        uint
}

type TreasureDAO struct {
	store *Store
}

func NewTreasureDAO(store *Store) *TreasureDAO {
	return &TreasureDAO{
		store: store,
	}
}

func buildFindAllQuery(filter TreasureFilter) (string, []any, error) {
	if !sortableColumns[filter.SortColumn] {
		return "", nil, fmt.Errorf("unsortable column %q", filter.SortColumn)
	}

	var b strings.Builder
	params := map[string]any{}

	b.WriteString(selectTreasuresWithShop)
	if filter.Colour != "" {
		b.WriteString("\nWHERE treasures.colour = :colour")
		params["colour"] = filter.Colour
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	b.WriteString("\nORDER BY " + sqlsafe.Identifier("treasures", filter.SortColumn) + " " + direction)

	return sqlsafe.Bind(b.String(), params)
}

func (d *TreasureDAO) FindAll(ctx context.Context, filter TreasureFilter) (Result, error) {
	query, args, err := buildFindAllQuery(filter)
	if err != nil {
		return Result{}, fmt.Errorf("buildFindAllQuery -> %w", err)
	}

	return d.store.Execute(ctx, query, args...)
}

func (d *TreasureDAO) Insert(ctx context.Context, t NewTreasure) (Result, error) {
	query, args, err := sqlsafe.Bind(insertTreasure, map[string]any{
		"treasure_name":   t.TreasureName,
		"colour":          t.Colour,
		"age":             t.Age,
		"cost_at_auction": t.CostAtAuction,
		"shop_id":         t.ShopID,
	})
	if err != nil {
		return Result{}, err
	}

	return d.store.Execute(ctx, query, args...)
}

func (d *TreasureDAO) UpdatePrice(ctx context.Context, id int, cost float64) (Result, error) {
	query, args, err := sqlsafe.Bind(updateTreasurePrice, map[string]any{
		"treasure_id":     id,
		"cost_at_auction": cost,
	})
	if err != nil {
		return Result{}, err
	}

	result, err := d.store.Execute(ctx, query, args...)
	if err != nil {
		return Result{}, err
	}
	if len(result.Rows) == 0 {
		return Result{}, ErrTreasureNotFound
	}

	return result, nil
}

func (d *TreasureDAO) Delete(ctx context.Context, id int) error {
	query, args, err := sqlsafe.Bind(deleteTreasure, map[string]any{
		"treasure_id": id,
	})
	if err != nil {
		return err
	}

	affected, err := d.store.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTreasureNotFound
	}

	return nil
}
