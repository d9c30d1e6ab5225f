// pkg/connector/drivers.go
package connector

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"
	_ "modernc.org/sqlite"

	"github.com/David-Botos/consultant-insights/pkg/config"
)

func init() {
	// sqlx only knows the bindvar style of the drivers it ships aliases for
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
	sqlx.BindDriver(config.DriverSnowflake, sqlx.QUESTION)
}

// settingsFor returns pool settings adjusted for the driver
func settingsFor(cfg *config.DatabaseConfig) (maxOpen, maxIdle int) {
	maxOpen, maxIdle = cfg.MaxOpenConns, cfg.MaxIdleConns
	if cfg.Driver == config.DriverSQLite {
		// sqlite typically wants 1 writer
		maxOpen, maxIdle = 1, 1
	}
	return maxOpen, maxIdle
}
