package services

import (
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/infrastructure/database"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/infrastructure/persistence"
)

// ServiceManager orchestrates all services with dependency injection
type ServiceManager struct {
	db *database.MongoConnection

	Messages *MessageService
}

// NewServiceManager creates a new service manager with all dependencies wired
func NewServiceManager(db *database.MongoConnection) *ServiceManager {
	sm := &ServiceManager{
		db: db,
	}

	repo := persistence.NewMessageRepository(db)
	sm.Messages = NewMessageService(repo)

	return sm
}
