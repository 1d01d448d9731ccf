// Package sqlsafe quotes identifiers and literals for PostgreSQL statements and binds
// named placeholders to positional arguments.
//
// Values coming from a request are always bound through Bind. Identifier only ever
// receives allow-listed column names; Literal and Interpolate exist to render statements
// for logs.
package sqlsafe

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

var (
	ErrUnsupportedLiteral = errors.New("unsupported literal type")
	ErrMissingParameter   = errors.New("missing query parameter")
)

// Identifier quotes every part of a dotted identifier, e.g. Identifier("treasures", "age")
// renders "treasures"."age". Embedded double quotes are doubled and NUL bytes dropped.
func Identifier(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

// Literal renders v as a PostgreSQL literal. Numbers and booleans are rendered bare,
// strings are single-quoted.
func Literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteString(x), nil
	case []byte:
		return quoteString(string(x)), nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case time.Time:
		return quoteString(x.Format(time.RFC3339Nano)), nil
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedLiteral, v)
}

func formatFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedLiteral, f)
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize), nil
}

// quoteString follows the escaping rules of lib/pq's QuoteLiteral.
func quoteString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, `'`, `''`)
	if strings.Contains(s, `\`) {
		return `E'` + strings.ReplaceAll(s, `\`, `\\`) + `'`
	}

	return `'` + s + `'`
}

// Interpolate replaces $N placeholders with the literal form of args[N-1].
// The result is meant for logs; it is never sent to the database.
func Interpolate(query string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(query))

	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}

		n, err := strconv.Atoi(query[i+1 : j])
		if err != nil || n < 1 || n > len(args) {
			return "", fmt.Errorf("%w: $%s", ErrMissingParameter, query[i+1:j])
		}

		lit, err := Literal(args[n-1])
		if err != nil {
			return "", err
		}
		b.WriteString(lit)
		i = j - 1
	}

	return b.String(), nil
}
