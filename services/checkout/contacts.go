package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

const contactKeyPrefix = "pickup-details:"

// ContactStore remembers pickup contact details between visits.
type ContactStore interface {
	SaveContact(ctx context.Context, clientID string, c models.SavedContact) error
	LoadContact(ctx context.Context, clientID string) (*models.SavedContact, error)
}

// RepoContactStore keeps contacts in a session repository. A zero TTL keeps
// them until overwritten.
type RepoContactStore struct {
	Repo session.SessionRepository
	TTL  time.Duration
}

func (s *RepoContactStore) SaveContact(ctx context.Context, clientID string, c models.SavedContact) error {
	return s.Repo.Save(ctx, contactKeyPrefix+clientID, c, s.TTL)
}

// LoadContact returns nil when nothing was saved for clientID.
func (s *RepoContactStore) LoadContact(ctx context.Context, clientID string) (*models.SavedContact, error) {
	var c models.SavedContact
	err := s.Repo.Load(ctx, contactKeyPrefix+clientID, &c)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func contactFrom(d models.PickupDetails) models.SavedContact {
	return models.SavedContact{
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Instructions: d.Instructions,
	}
}
