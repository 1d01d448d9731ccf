package sqlsafe

import (
	"fmt"
	"strconv"

	"github.com/mikeschinkel/go-sqlparams"
)

func postgresPlaceholder(i int) string {
	return "$" + strconv.Itoa(i)
}

// Bind rewrites :name placeholders into $1..$N and returns the arguments in placeholder
// order. A name used more than once shares one placeholder.
func Bind(query string, params map[string]any) (string, []any, error) {
	parsed, err := sqlparams.ParseSQL(sqlparams.SQLQuery(query), postgresPlaceholder)
	if err != nil {
		return "", nil, fmt.Errorf("sqlparams.ParseSQL -> %w", err)
	}

	names := parsed.Parameters()
	args := make([]any, len(names))
	for i, p := range names {
		v, ok := params[string(p.Name)]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrMissingParameter, p.Name)
		}
		args[i] = v
	}

	return string(parsed.SQL), args, nil
}
