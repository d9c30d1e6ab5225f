// pkg/query/executor.go

// Package query runs one statement against the managed connection and
// materialises its complete result set.
package query

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

// Connector hands out the live handle, opening it when needed
type Connector interface {
	Connect(ctx context.Context) (*sqlx.DB, error)
}

// Executor runs statements through a Connector
type Executor struct {
	conn    Connector
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecutor creates an executor. A zero timeout leaves queries unbounded.
func NewExecutor(conn Connector, timeout time.Duration, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.L()
	}
	return &Executor{
		conn:    conn,
		timeout: timeout,
		logger:  logger.Named("query-executor"),
	}
}

// ExecuteQuery ensures a connection is open, runs query with params and
// returns every row in the order the engine produced them. Positional params
// use '?' placeholders and are rebound for the driver. A single
// map[string]interface{} param binds :name placeholders instead. The
// connection stays open afterwards.
func (e *Executor) ExecuteQuery(ctx context.Context, query string, params ...interface{}) ([]model.Row, error) {
	db, err := e.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}

	bound, args, err := bind(db, query, params)
	if err != nil {
		return nil, apperrors.Query("failed to bind query parameters", err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := db.QueryxContext(ctx, bound, args...)
	if err != nil {
		return nil, apperrors.Query("query failed", err)
	}
	defer rows.Close()

	result := make([]model.Row, 0)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, apperrors.Query("failed to scan row", err)
		}
		result = append(result, model.Row(values))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Query("error iterating rows", err)
	}

	e.logger.Debug("Query executed",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}

// bind resolves named parameters and rewrites bindvars for the driver
func bind(db *sqlx.DB, query string, params []interface{}) (string, []interface{}, error) {
	if len(params) == 1 {
		if named, ok := params[0].(map[string]interface{}); ok {
			q, args, err := sqlx.Named(query, named)
			if err != nil {
				return "", nil, err
			}
			return db.Rebind(q), args, nil
		}
	}
	return db.Rebind(query), params, nil
}
