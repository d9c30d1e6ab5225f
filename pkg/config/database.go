// pkg/config/database.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/snowflakedb/gosnowflake"
	"gopkg.in/ini.v1"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
)

// Supported driver names, as registered with database/sql
const (
	DriverMySQL     = "mysql"
	DriverPostgres  = "postgres"
	DriverPgx       = "pgx"
	DriverSnowflake = "snowflake"
	DriverSQLite    = "sqlite"
)

// DatabaseSection is the ini section holding the credentials
const DatabaseSection = "database"

// requiredKeys must be present in the database section, even if empty
var requiredKeys = []string{"host", "username", "password", "database"}

// DatabaseConfig holds connection parameters for the candidates store
type DatabaseConfig struct {
	Driver   string `validate:"oneof=mysql postgres pgx snowflake sqlite"`
	Host     string `validate:"required_unless=Driver sqlite"`
	Port     int    `validate:"omitempty,min=1,max=65535"`
	Username string
	Password string
	Database string `validate:"required"`

	// Postgres only
	SSLMode string

	// Snowflake only; Host is used as the account when Account is empty
	Account   string
	Warehouse string
	Role      string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ConnectTimeout time.Duration
	// QueryTimeout of zero leaves queries unbounded
	QueryTimeout time.Duration
}

// LoadDatabaseConfig reads the [database] section of the ini file at path.
// The four credential keys are required; everything else falls back to
// environment variables and defaults.
func LoadDatabaseConfig(path string) (*DatabaseConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Config(fmt.Sprintf("config file %s not found", path), err)
		}
		return nil, apperrors.Config(fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if !file.HasSection(DatabaseSection) {
		return nil, apperrors.Config(fmt.Sprintf("section [%s] missing from %s", DatabaseSection, path), nil)
	}
	section := file.Section(DatabaseSection)

	for _, key := range requiredKeys {
		if !section.HasKey(key) {
			return nil, apperrors.Config(fmt.Sprintf("key %q missing from [%s]", key, DatabaseSection), nil)
		}
	}

	driver := getEnv("DB_DRIVER", section.Key("driver").MustString(DriverMySQL))

	port := 0
	if raw := section.Key("port").String(); raw != "" {
		port, err = strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.Config(fmt.Sprintf("invalid port %q", raw), err)
		}
	}
	port = getEnvAsInt("DB_PORT", port)

	cfg := &DatabaseConfig{
		Driver:   strings.ToLower(driver),
		Host:     section.Key("host").String(),
		Port:     port,
		Username: section.Key("username").String(),
		Password: section.Key("password").String(),
		Database: section.Key("database").String(),

		SSLMode:   section.Key("sslmode").MustString("disable"),
		Account:   section.Key("account").String(),
		Warehouse: section.Key("warehouse").String(),
		Role:      section.Key("role").String(),

		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
		ConnMaxLifetime: getEnvAsSeconds("DB_CONN_MAX_LIFETIME_SECONDS", 0),
		ConnectTimeout:  getEnvAsSeconds("DB_CONNECT_TIMEOUT_SECONDS", 10),
		QueryTimeout:    getEnvAsSeconds("DB_QUERY_TIMEOUT_SECONDS", 0),
	}

	return cfg, nil
}

// DSN returns the data source name for the configured driver
func (c *DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		return c.mysqlDSN(), nil
	case DriverPostgres, DriverPgx:
		return c.postgresDSN(), nil
	case DriverSnowflake:
		return c.snowflakeDSN()
	case DriverSQLite:
		return c.Database, nil
	default:
		return "", apperrors.Config(fmt.Sprintf("unsupported driver %q", c.Driver), nil)
	}
}

func (c *DatabaseConfig) mysqlDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.address(3306)
	mc.DBName = c.Database
	mc.ParseTime = true
	if c.ConnectTimeout > 0 {
		mc.Timeout = c.ConnectTimeout
	}
	return mc.FormatDSN()
}

// postgresDSN builds a keyword/value string understood by both lib/pq and pgx
func (c *DatabaseConfig) postgresDSN() string {
	port := c.Port
	if port == 0 {
		port = 5432
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteValue(c.Host),
		port,
		quoteValue(c.Username),
		quoteValue(c.Password),
		quoteValue(c.Database),
		quoteValue(c.SSLMode),
	)

	if c.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", int(c.ConnectTimeout.Seconds()))
	}

	return dsn
}

func (c *DatabaseConfig) snowflakeDSN() (string, error) {
	account := c.Account
	if account == "" {
		account = c.Host
	}

	sfConfig := &gosnowflake.Config{
		Account:   account,
		User:      c.Username,
		Password:  c.Password,
		Database:  c.Database,
		Warehouse: c.Warehouse,
		Role:      c.Role,
	}
	if c.ConnectTimeout > 0 {
		sfConfig.LoginTimeout = c.ConnectTimeout
	}

	dsn, err := gosnowflake.DSN(sfConfig)
	if err != nil {
		return "", apperrors.Config("failed to build Snowflake DSN", err)
	}
	return dsn, nil
}

func (c *DatabaseConfig) address(defaultPort int) string {
	port := c.Port
	if port == 0 {
		port = defaultPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// quoteValue escapes a libpq keyword value when it needs quoting
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
