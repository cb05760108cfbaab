package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrator migrações embutidas do driver configurado
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// NewMigrator prepara as migrações de migrations/<driver>
func NewMigrator(db *sql.DB, driver string, logger *zap.Logger) (*Migrator, error) {
	var (
		instance migratedb.Driver
		dir      string
		err      error
	)
	switch driver {
	case config.DriverPostgres:
		dir = "migrations/postgres"
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case config.DriverSQLite:
		dir = "migrations/sqlite"
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar migrações: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar migrações: %w", err)
	}
	return &Migrator{m: m, logger: logger}, nil
}

// Up aplica as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("falha ao aplicar migrações: %w", err)
	}
	mg.logVersion()
	return nil
}

// Down desfaz todas as migrações
func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("falha ao desfazer migrações: %w", err)
	}
	mg.logVersion()
	return nil
}

func (mg *Migrator) logVersion() {
	version, dirty, err := mg.m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		mg.logger.Info("banco sem migrações aplicadas")
	case dirty:
		mg.logger.Warn("migração em estado dirty", zap.Uint("version", version))
	default:
		mg.logger.Info("migrações concluídas", zap.Uint("version", version))
	}
}

// RunMigrations aplica as migrações pendentes (usado na subida do servidor)
func RunMigrations(db *sql.DB, driver string, logger *zap.Logger) error {
	mg, err := NewMigrator(db, driver, logger)
	if err != nil {
		return err
	}
	return mg.Up()
}
