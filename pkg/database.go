package database

import (
	"fmt"
	"volley-training/internal/models/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database selected by cfg.Driver
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgres(cfg, log)
	case config.DriverSQLite:
		return NewSQLite(cfg.Path, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewPostgres(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect(config.DriverPostgres, connStr)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Info("connected to PostgreSQL",
		zap.String("host", cfg.Host), zap.Int("port", cfg.Port), zap.String("db", cfg.Name))
	return db, nil
}

// NewSQLite opens a file database. The pool is held at one connection: SQLite has a
// single writer, and an in-memory database exists per connection.
func NewSQLite(path string, log *zap.Logger) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sqlx.Connect(config.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	db.SetMaxOpenConns(1)

	log.Info("opened SQLite database", zap.String("path", path))
	return db, nil
}
