package domain

import (
	"fmt"
	"strings"
)

// InvalidParameterError reports a query or body value outside its allow-list.
type InvalidParameterError struct {
	Parameter string
	Value     string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Parameter, e.Value)
}

type SortColumn string

const (
	SortByAge           SortColumn = "age"
	SortByCostAtAuction SortColumn = "cost_at_auction"
	SortByTreasureName  SortColumn = "treasure_name"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortColumn defaults to age when v is empty.
func ParseSortColumn(v string) (SortColumn, error) {
	switch SortColumn(v) {
	case "":
		return SortByAge, nil
	case SortByAge, SortByCostAtAuction, SortByTreasureName:
		return SortColumn(v), nil
	}

	return "", &InvalidParameterError{Parameter: "sort_by", Value: v}
}

// ParseSortOrder is case-insensitive and defaults to asc when v is empty.
func ParseSortOrder(v string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(v)) {
	case "":
		return OrderAsc, nil
	case OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	}

	return "", &InvalidParameterError{Parameter: "order", Value: v}
}

// ParseColour reports ok=false when no colour was given.
func ParseColour(v string) (c Colour, ok bool, err error) {
	if v == "" {
		return "", false, nil
	}

	c = Colour(v)
	if !c.Valid() {
		return "", false, &InvalidParameterError{Parameter: "colour", Value: v}
	}

	return c, true, nil
}

// TreasureQuery holds the validated filter and sort options of a treasure listing.
type TreasureQuery struct {
	SortBy    SortColumn
	Order     SortOrder
	Colour    Colour
	HasColour bool
}

func NewTreasureQuery(sortBy, order, colour string) (TreasureQuery, error) {
	col, err := ParseSortColumn(sortBy)
	if err != nil {
		return TreasureQuery{}, err
	}

	ord, err := ParseSortOrder(order)
	if err != nil {
		return TreasureQuery{}, err
	}

	c, ok, err := ParseColour(colour)
	if err != nil {
		return TreasureQuery{}, err
	}

	return TreasureQuery{
		SortBy:    col,
		Order:     ord,
		Colour:    c,
		HasColour: ok,
	}, nil
}
