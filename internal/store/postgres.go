package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS fuzzy_decisions (
	decision_id     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	source          TEXT NOT NULL DEFAULT '',
	health          DOUBLE PRECISION NOT NULL,
	enemies         DOUBLE PRECISION NOT NULL,
	health_low      DOUBLE PRECISION NOT NULL,
	health_medium   DOUBLE PRECISION NOT NULL,
	health_high     DOUBLE PRECISION NOT NULL,
	enemies_low     DOUBLE PRECISION NOT NULL,
	enemies_medium  DOUBLE PRECISION NOT NULL,
	enemies_high    DOUBLE PRECISION NOT NULL,
	health_crisp    DOUBLE PRECISION NOT NULL,
	enemies_crisp   DOUBLE PRECISION NOT NULL,
	utility         DOUBLE PRECISION NOT NULL,
	action          TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS fuzzy_decisions_created_at_idx ON fuzzy_decisions (created_at DESC);
CREATE INDEX IF NOT EXISTS fuzzy_decisions_action_idx ON fuzzy_decisions (action);`

// Migrate creates the decisions table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const decisionColumns = `decision_id, source, health, enemies,
	health_low, health_medium, health_high,
	enemies_low, enemies_medium, enemies_high,
	health_crisp, enemies_crisp, utility,
	action, created_at`

func (s *PostgresStore) CreateDecision(ctx context.Context, d *DecisionRecord) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO fuzzy_decisions (source, health, enemies,
			health_low, health_medium, health_high,
			enemies_low, enemies_medium, enemies_high,
			health_crisp, enemies_crisp, utility, action)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING decision_id, created_at`,
		d.Source, d.Health, d.Enemies,
		d.HealthDegrees.Low, d.HealthDegrees.Medium, d.HealthDegrees.High,
		d.EnemiesDegrees.Low, d.EnemiesDegrees.Medium, d.EnemiesDegrees.High,
		d.HealthCrisp, d.EnemiesCrisp, d.Utility, d.Action,
	).Scan(&d.ID, &d.CreatedAt)
}

func (s *PostgresStore) GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+decisionColumns+` FROM fuzzy_decisions WHERE decision_id = $1`, id)
	d, err := scanDecision(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *PostgresStore) ListDecisions(ctx context.Context, filter DecisionFilter) ([]*DecisionRecord, error) {
	query := `SELECT ` + decisionColumns + ` FROM fuzzy_decisions WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Action != "" {
		n++
		query += fmt.Sprintf(" AND action = $%d", n)
		args = append(args, filter.Action)
	}
	if filter.Source != "" {
		n++
		query += fmt.Sprintf(" AND source = $%d", n)
		args = append(args, filter.Source)
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DecisionRecord
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*DecisionStats, error) {
	stats := &DecisionStats{ByAction: make(map[string]int)}

	rows, err := s.pool.Query(ctx, `SELECT action, COUNT(*) FROM fuzzy_decisions GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return nil, err
		}
		stats.ByAction[action] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = s.pool.QueryRow(ctx, `SELECT COALESCE(AVG(utility), 0) FROM fuzzy_decisions`).Scan(&stats.AvgUtility)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanDecision(row pgx.Row) (*DecisionRecord, error) {
	d := &DecisionRecord{}
	err := row.Scan(
		&d.ID, &d.Source, &d.Health, &d.Enemies,
		&d.HealthDegrees.Low, &d.HealthDegrees.Medium, &d.HealthDegrees.High,
		&d.EnemiesDegrees.Low, &d.EnemiesDegrees.Medium, &d.EnemiesDegrees.High,
		&d.HealthCrisp, &d.EnemiesCrisp, &d.Utility,
		&d.Action, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
