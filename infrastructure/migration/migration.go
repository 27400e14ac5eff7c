// Package migration aplica o schema embutido com golang-migrate, com um conjunto
// de scripts para cada driver suportado.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-api/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// Up aplica todas as migrações pendentes
func Up(cfg config.Database) error {
	return run(cfg, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Down desfaz as últimas n migrações
func Down(cfg config.Database, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("número de passos inválido: %d", steps)
	}

	return run(cfg, func(m *migrate.Migrate) error {
		return m.Steps(-steps)
	})
}

// Version retorna a versão atual do schema
func Version(cfg config.Database) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)

	err := run(cfg, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	})

	return version, dirty, err
}

func run(cfg config.Database, fn func(*migrate.Migrate) error) error {
	// Conexão separada: o driver do migrate fecha o *sql.DB ao terminar
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("erro ao abrir banco para migração: %w", err)
	}
	defer db.Close()

	driver, err := databaseDriver(db, cfg.Driver)
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationsFS, cfg.Driver)
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância do migrate: %w", err)
	}
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Migrações executadas com sucesso")
	return nil
}

func databaseDriver(db *sql.DB, driver string) (database.Driver, error) {
	switch driver {
	case config.DriverPostgres:
		d, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar driver postgres do migrate: %w", err)
		}
		return d, nil
	case config.DriverSQLite:
		d, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar driver sqlite do migrate: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("driver de banco de dados não suportado: %s", driver)
	}
}
