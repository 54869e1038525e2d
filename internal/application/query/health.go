package query

import (
	"context"
	"fmt"
	"time"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/jackc/pgx/v5/pgxpool"
)

// healthTables are the tables reported by the readiness probe.
var healthTables = []string{"admins", "articles", "events", "feedback", "customer_inquiries", "gallery_images"}

type DBHealth struct {
	pool *pgxpool.Pool
}

func NewDBHealth(pool *pgxpool.Pool) *DBHealth {
	return &DBHealth{pool: pool}
}

func (q *DBHealth) Query(ctx context.Context) (*dto.DBHealthResponse, error) {
	var now time.Time
	if err := q.pool.QueryRow(ctx, `SELECT now()`).Scan(&now); err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, table := range healthTables {
		var count int
		// table names come from the fixed list above, never from input
		err := q.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*)::int FROM %s`, table)).Scan(&count)
		if err != nil {
			return nil, err
		}
		counts[table] = count
	}

	return &dto.DBHealthResponse{OK: true, Now: now, Counts: counts}, nil
}
