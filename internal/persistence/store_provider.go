package persistence

import (
	"context"
	"fmt"
	"time"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/structures"
)

const connectTimeout = 10 * time.Second

// NewSnapshotStore picks the backend named by persistence.driver.
func NewSnapshotStore(conf *structures.Config, logger providers.Logger) (interfaces.SnapshotStoreInterface, error) {
	p := conf.Persistence
	switch p.Driver {
	case "", "file":
		logger.Infof(providers.TypeStorage, "Using file snapshot store in %s", p.Dir)
		return NewFileStore(p.Dir)
	case "memory":
		logger.Warnf(providers.TypeStorage, "Using in-memory snapshot store, history will not survive restarts")
		return NewMemoryStore(), nil
	case "valkey":
		logger.Infof(providers.TypeStorage, "Using valkey snapshot store at %s", p.ValkeyAddress)
		return NewValkeyStore(p.ValkeyAddress)
	case "postgres":
		logger.Infof(providers.TypeStorage, "Using postgres snapshot store")
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return NewPostgresStore(ctx, p.PostgresDsn)
	default:
		return nil, fmt.Errorf("unknown persistence driver %q", p.Driver)
	}
}
