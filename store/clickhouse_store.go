// api/store/clickhouse_store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouseStore keeps blobs in a ReplacingMergeTree table; the newest
// updated_at per key wins.
type ClickHouseStore struct {
	conn clickhouse.Conn
	now  func() time.Time
}

func NewClickHouseStore(conn clickhouse.Conn) *ClickHouseStore {
	return &ClickHouseStore{
		conn: conn,
		now:  time.Now,
	}
}

func (s *ClickHouseStore) EnsureSchema(ctx context.Context) error {
	err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analytics_blobs (
			key        String,
			value      String,
			updated_at DateTime64(3)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY key
	`)
	if err != nil {
		return fmt.Errorf("failed to create analytics_blobs table: %w", err)
	}
	return nil
}

func (s *ClickHouseStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM analytics_blobs FINAL
		WHERE key = ?
		ORDER BY updated_at DESC
		LIMIT 1
	`
	var value string
	if err := s.conn.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query blob %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *ClickHouseStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.conn.Exec(ctx,
		`INSERT INTO analytics_blobs (key, value, updated_at) VALUES (?, ?, ?)`,
		key, string(value), s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert blob %q: %w", key, err)
	}
	return nil
}
