package postgres

import (
	"context"
	"fmt"
)

const paymentsSchema = `
CREATE TABLE IF NOT EXISTS mock_payments (
	id          TEXT NOT NULL,
	provider    TEXT NOT NULL,
	reference   TEXT NOT NULL,
	item_name   TEXT NOT NULL DEFAULT '',
	amount      DOUBLE PRECISION NOT NULL,
	currency    TEXT NOT NULL,
	status      TEXT NOT NULL,
	link        TEXT NOT NULL,
	request     JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (provider, id)
)`

// Migrate creates the tables used by the postgres stores if they are missing.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.ExecContext(ctx, paymentsSchema); err != nil {
		return fmt.Errorf("failed to create mock_payments: %w", err)
	}
	return nil
}
