package dao

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/pkg/sqlsafe"
)

// Result is what a statement returned: column names in select order and one positional
// value slice per row.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Store runs raw statements. Every call holds exactly one pooled connection and gives it
// back before returning.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) conn(ctx context.Context) (*sql.Conn, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, fmt.Errorf("s.db.DB -> %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlDB.Conn -> %w", err)
	}

	return conn, nil
}

func logStatement(query string, args []any) {
	if ce := zap.L().Check(zap.DebugLevel, "executing statement"); ce != nil {
		rendered, err := sqlsafe.Interpolate(query, args)
		if err != nil {
			rendered = query
		}
		ce.Write(zap.String("sql", rendered))
	}
}

// Execute runs a statement that returns rows.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return Result{}, err
	}
	defer conn.Close()

	logStatement(query, args)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("conn.QueryContext -> %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("rows.Columns -> %w", err)
	}

	result := Result{
		Columns: columns,
		Rows:    make([][]any, 0),
	}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err = rows.Scan(dest...); err != nil {
			return Result{}, fmt.Errorf("rows.Scan -> %w", err)
		}
		result.Rows = append(result.Rows, values)
	}

	if err = rows.Err(); err != nil {
		return Result{}, fmt.Errorf("rows.Err -> %w", err)
	}

	return result, nil
}

// Exec runs a statement without a result set and reports the affected row count.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	logStatement(query, args)

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("conn.ExecContext -> %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("res.RowsAffected -> %w", err)
	}

	return affected, nil
}
