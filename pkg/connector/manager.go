// pkg/connector/manager.go
package connector

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/David-Botos/consultant-insights/pkg/config"
	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
)

// Manager owns at most one live database handle and the credentials used to
// open it. The handle is opened on first use and kept until Disconnect.
type Manager struct {
	mu     sync.Mutex
	cfg    *config.DatabaseConfig
	db     *sqlx.DB
	logger *zap.Logger
}

// NewManager creates a manager for cfg without opening a connection
func NewManager(cfg *config.DatabaseConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.L()
	}
	return &Manager{
		cfg:    cfg,
		logger: logger.Named("connection-manager"),
	}
}

var (
	instanceOnce sync.Once
	instance     *Manager
	instanceErr  error
)

// Instance returns the process-wide manager. The first call loads and
// validates the configuration at path; later calls return the same manager
// (or the same load error) and ignore their arguments.
func Instance(path string, logger *zap.Logger) (*Manager, error) {
	instanceOnce.Do(func() {
		instance, instanceErr = loadManager(path, logger)
	})
	return instance, instanceErr
}

func loadManager(path string, logger *zap.Logger) (*Manager, error) {
	cfg, err := config.LoadValidatedDatabaseConfig(path)
	if err != nil {
		return nil, err
	}
	return NewManager(cfg, logger), nil
}

// Config returns the credentials the manager connects with
func (m *Manager) Config() *config.DatabaseConfig {
	return m.cfg
}

// Connect opens the connection if none is open and returns the live handle.
// Calling it while connected returns the existing handle.
func (m *Manager) Connect(ctx context.Context) (*sqlx.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	dsn, err := m.cfg.DSN()
	if err != nil {
		return nil, err
	}

	m.logger.Info("Connecting to database",
		zap.String("driver", m.cfg.Driver),
		zap.String("host", m.cfg.Host),
		zap.Int("port", m.cfg.Port),
		zap.String("database", m.cfg.Database),
		zap.String("user", m.cfg.Username))

	db, err := sqlx.Open(m.cfg.Driver, dsn)
	if err != nil {
		return nil, apperrors.Connection(fmt.Sprintf("failed to initialize %s connection", m.cfg.Driver), err)
	}

	maxOpen, maxIdle := settingsFor(m.cfg)
	ApplyConnectionSettings(db.DB, maxOpen, maxIdle, m.cfg.ConnMaxLifetime)

	// sql.Open is lazy; the ping performs the handshake
	if err := PingWithTimeout(ctx, db.DB, m.cfg.ConnectTimeout); err != nil {
		db.Close()
		return nil, apperrors.Connection(fmt.Sprintf("failed to connect to %s", m.cfg.Database), err)
	}

	m.db = db
	LogConnectionStats(m.logger, m.cfg.Database, db.DB)
	return db, nil
}

// Connected reports whether a handle is currently open
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db != nil
}

// Disconnect closes the open handle, if any, and clears it
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", zap.String("database", m.cfg.Database))
	LogConnectionStats(m.logger, m.cfg.Database, m.db.DB)

	err := m.db.Close()
	m.db = nil
	if err != nil {
		return apperrors.Connection("failed to close connection", err)
	}
	return nil
}
