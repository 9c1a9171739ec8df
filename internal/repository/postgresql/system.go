package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// ListTables returns the public-schema table names. Only the connectivity
// probe endpoint uses this.
func ListTables(ctx context.Context, db *database.DB) ([]string, error) {
	q := GetQuerier(ctx, db)

	rows, err := q.Query(ctx, `
		SELECT tablename
		FROM pg_catalog.pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
