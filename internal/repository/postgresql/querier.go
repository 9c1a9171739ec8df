package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// GetQuerier returns the shared pool. Every mutation in this package is a
// single-statement operation, so there is no transactional variant.
func GetQuerier(_ context.Context, db *database.DB) database.Querier {
	return db.Pool
}
