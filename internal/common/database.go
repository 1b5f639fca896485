package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"

	_ "modernc.org/sqlite"
)

// DatabaseResult bundles the handles InitDatabase opens so callers can
// defer a single cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil in in-memory mode
	Cleanup func()
}

// InitDatabase opens either the configured Postgres pool or an in-memory
// SQLite database (batch runs, tests). The in-memory path also runs the
// schema migration since there is nothing persistent to migrate against.
func InitDatabase(ctx context.Context, cfg *Config, inMemory bool, logger *slog.Logger) (*DatabaseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inMemory {
		db, err := sql.Open("sqlite", "file:dealdesk?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, WrapError(err, "open in-memory sqlite")
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "migrate in-memory schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DatabaseResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DatabaseResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(client, pool, logger)
		},
	}, nil
}
