package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	registryRepo   contract.RegistryRepo
	preferenceRepo contract.PreferenceRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.registryRepo = newRegistryRepository(i.db.conn)
	i.preferenceRepo = newPreferenceRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		registryRepo:   newRegistryRepository(db),
		preferenceRepo: newPreferenceRepository(db),
	}
}

// Registry returns the role record repository
func (i *instance) Registry() contract.RegistryRepo {
	return i.registryRepo
}

// Preference returns the guild preference repository
func (i *instance) Preference() contract.PreferenceRepo {
	return i.preferenceRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
