package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"lolatlas/pkg/config"
	"lolatlas/pkg/database/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Advisory lock shared by every process migrating the cache backup schema.
const migrationLockKey = "lolatlas_migrations_lock"

// RunMigrations brings the cache backup schema up to date.
// The api and the scheduler may start together, only the holder of the lock migrates.
func RunMigrations(cfg *config.Config, db *sql.DB) (err error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	source := "file://" + cfg.Database.MigrationsPath
	m, err := migrate.NewWithDatabaseInstance(source, cfg.Database.Database, driver)
	if err != nil {
		return fmt.Errorf("could not read the migrations at %s: %w", source, err)
	}

	acquired, err := tryMigrationLock(db)
	if err != nil {
		return err
	}
	if !acquired {
		log.Printf("Another process is migrating %s, skipping", models.CacheBackupTable)
		return nil
	}
	defer func() {
		err = errors.Join(err, releaseMigrationLock(db))
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not migrate %s: %w", models.CacheBackupTable, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("could not read the schema version of %s: %w", models.CacheBackupTable, err)
	}
	if dirty {
		return fmt.Errorf("schema of %s is dirty at version %d, fix it by hand", models.CacheBackupTable, version)
	}

	log.Printf("Table %s at schema version %d", models.CacheBackupTable, version)
	return nil
}

func tryMigrationLock(db *sql.DB) (bool, error) {
	var acquired bool
	if err := db.QueryRow("SELECT pg_try_advisory_lock(hashtext($1))", migrationLockKey).Scan(&acquired); err != nil {
		return false, fmt.Errorf("could not acquire the migration lock: %w", err)
	}
	return acquired, nil
}

func releaseMigrationLock(db *sql.DB) error {
	var released bool
	if err := db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationLockKey).Scan(&released); err != nil {
		return fmt.Errorf("could not release the migration lock: %w", err)
	}
	if !released {
		return errors.New("migration lock was not held")
	}
	return nil
}
