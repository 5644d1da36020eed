package anime

import (
	"fmt"
)

// ownerUserID is the single tenant whose list is served.
const ownerUserID = 1

const defaultStatus = "watching"

// Store is the persistence surface the service needs.
type Store interface {
	ListByUser(userID uint) ([]Entry, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the owner's tracked shows newest-first.
func (s *Service) List() ([]Entry, error) {
	entries, err := s.store.ListByUser(ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list anime entries: %v", err)
	}

	for i := range entries {
		entries[i].UserID = ownerUserID
		if entries[i].Status == "" {
			entries[i].Status = defaultStatus
		}
	}
	return entries, nil
}
