package query

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/David-Botos/consultant-insights/pkg/config"
	"github.com/David-Botos/consultant-insights/pkg/connector"
	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
)

func setupExecutor(t *testing.T) (*Executor, *connector.Manager) {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "positions.db"),
	}
	manager := connector.NewManager(cfg, zap.NewNop())
	t.Cleanup(func() { manager.Disconnect() })

	db, err := manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	db.MustExec(`CREATE TABLE positions (id INTEGER PRIMARY KEY, position TEXT NOT NULL)`)
	db.MustExec(`INSERT INTO positions (id, position) VALUES (3, 'Tester'), (1, 'Developer'), (2, 'Architect')`)

	return NewExecutor(manager, 0, zap.NewNop()), manager
}

func TestExecuteQueryReturnsAllRows(t *testing.T) {
	exec, _ := setupExecutor(t)

	rows, err := exec.ExecuteQuery(context.Background(), "SELECT id, position FROM positions ORDER BY id")
	if err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, row := range rows {
		if len(row) != 2 {
			t.Errorf("row %d arity = %d, want 2", i, len(row))
		}
	}
	if rows[0][0] != int64(1) || rows[0][1] != "Developer" {
		t.Errorf("rows[0] = %#v", rows[0])
	}
}

func TestExecuteQueryPositionalParams(t *testing.T) {
	exec, _ := setupExecutor(t)

	rows, err := exec.ExecuteQuery(context.Background(),
		"SELECT position FROM positions WHERE id >= ? ORDER BY id", 2)
	if err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if len(rows) != 2 || rows[0][0] != "Architect" {
		t.Errorf("rows = %#v", rows)
	}
}

func TestExecuteQueryNamedParams(t *testing.T) {
	exec, _ := setupExecutor(t)

	rows, err := exec.ExecuteQuery(context.Background(),
		"SELECT id FROM positions WHERE position = :position",
		map[string]interface{}{"position": "Tester"})
	if err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if len(rows) != 1 || rows[0][0] != int64(3) {
		t.Errorf("rows = %#v", rows)
	}
}

func TestExecuteQueryEmptyResult(t *testing.T) {
	exec, _ := setupExecutor(t)

	rows, err := exec.ExecuteQuery(context.Background(), "SELECT id FROM positions WHERE id > 100")
	if err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("rows = %#v, want empty", rows)
	}
}

func TestExecuteQueryMalformedSQL(t *testing.T) {
	exec, manager := setupExecutor(t)

	_, err := exec.ExecuteQuery(context.Background(), "SELECT id FORM positions")
	if !apperrors.Is(err, apperrors.KindQuery) {
		t.Fatalf("ExecuteQuery() error = %v, want QueryError", err)
	}
	if !manager.Connected() {
		t.Error("query failure closed the connection")
	}
}

func TestExecuteQueryLeavesConnectionOpen(t *testing.T) {
	exec, manager := setupExecutor(t)
	manager.Disconnect()

	if _, err := exec.ExecuteQuery(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if !manager.Connected() {
		t.Error("ExecuteQuery() did not leave the connection open")
	}
}
