package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads payment rules from PostgreSQL so thresholds can be
// tuned per merchant without a redeploy. Missing rows fall back to the
// provided defaults.
type PostgresSource struct {
	db       *pgxpool.Pool
	merchant string
	fallback Rules
}

// NewPostgresSource constructs a Postgres-backed rules source for the
// given merchant.
func NewPostgresSource(db *pgxpool.Pool, merchant string, fallback Rules) *PostgresSource {
	return &PostgresSource{db: db, merchant: merchant, fallback: fallback}
}

// Rules fetches the merchant's rule row, falling back to the defaults
// when none exists.
func (s *PostgresSource) Rules(ctx context.Context) (Rules, error) {
	const query = `
        SELECT min_amount, max_amount, max_installments, min_installment_value
        FROM payment_rules
        WHERE merchant_id = $1`

	var r Rules
	err := s.db.QueryRow(ctx, query, s.merchant).Scan(
		&r.MinAmount, &r.MaxAmount, &r.MaxInstallments, &r.MinInstallmentValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.fallback, nil
		}
		return Rules{}, fmt.Errorf("load payment rules: %w", err)
	}
	return r, nil
}
