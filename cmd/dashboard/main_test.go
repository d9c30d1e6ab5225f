package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/David-Botos/consultant-insights/pkg/dashboard"
	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

type rowsQuerier []model.Row

func (q rowsQuerier) ExecuteQuery(context.Context, string, ...interface{}) ([]model.Row, error) {
	return q, nil
}

func TestWriteSnapshot(t *testing.T) {
	rows := rowsQuerier{
		{int64(1), "Engineer", "Ada", "Lovelace", "Berlin", "Senior", "2024-01-02 09:00:00",
			"100.00", nil, "Developer", "British", nil, nil, nil, nil, nil, nil},
	}
	loader := dashboard.NewLoader(rows, nil, zap.NewNop())

	var out bytes.Buffer
	if err := writeSnapshot(context.Background(), loader, &out); err != nil {
		t.Fatalf("writeSnapshot() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	for _, key := range []string{"run_id", "loaded_at", "views"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("output missing %q", key)
		}
	}
	// a single candidate has no defined correlations
	if !strings.Contains(out.String(), "null") {
		t.Errorf("expected null correlation cells in output:\n%s", out.String())
	}
}

func TestExitWithErrorLogsKind(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	core, logs := observer.New(zapcore.ErrorLevel)
	exitWithError(zap.New(core), "dashboard load failed", apperrors.Query("query failed", nil))

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	entries := logs.FilterMessage("dashboard load failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if kind := entries[0].ContextMap()["kind"]; kind != "QueryError" {
		t.Errorf("kind = %v, want QueryError", kind)
	}
}
