package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"

	"go.uber.org/zap"
)

const (
	registeredKeyPrefix   = "whatsapp-campaign-registered:"
	registrationKeyPrefix = "whatsapp-campaign:"
	dismissedKeyPrefix    = "campaign-popup-dismissed:"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferExpired  = errors.New("offer has expired")
)

// RegistrationError lists invalid sign-up fields.
type RegistrationError struct {
	Fields map[string]string
}

func (e *RegistrationError) Error() string {
	for _, k := range []string{"name", "phone"} {
		if msg, ok := e.Fields[k]; ok {
			return msg
		}
	}
	return "invalid registration"
}

// CouponResult is what the client copies and the toast it shows.
type CouponResult struct {
	OfferID string `json:"offerId"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Service struct {
	Flags      session.FlagRepository
	Offers     []models.Offer
	DismissTTL time.Duration
	Logger     *zap.Logger
	Now        func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// ActiveOffers lists offers that have not expired.
func (s *Service) ActiveOffers() []models.Offer {
	now := s.now()
	out := make([]models.Offer, 0, len(s.Offers))
	for _, o := range s.Offers {
		if o.ValidUntil.After(now) {
			out = append(out, o)
		}
	}
	return out
}

// CouponCode returns the code of an active offer for copying.
func (s *Service) CouponCode(offerID string) (CouponResult, error) {
	for _, o := range s.Offers {
		if o.ID != offerID {
			continue
		}
		if !o.ValidUntil.After(s.now()) {
			return CouponResult{}, ErrOfferExpired
		}
		return CouponResult{OfferID: o.ID, Code: o.CouponCode, Message: fmt.Sprintf("Code %s copied", o.CouponCode)}, nil
	}
	return CouponResult{}, ErrOfferNotFound
}

// Register signs a client up for the WhatsApp campaign. Registration is
// remembered without expiry.
func (s *Service) Register(ctx context.Context, clientID, name, phone string) (*models.CampaignRegistration, error) {
	fields := map[string]string{}
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		fields["name"] = "Please enter your name"
	}
	if !reservation.IsKenyanMobile(phone) {
		fields["phone"] = "Enter a valid WhatsApp number"
	}
	if clientID == "" {
		fields["clientId"] = "Missing client identifier"
	}
	if len(fields) > 0 {
		return nil, &RegistrationError{Fields: fields}
	}

	reg := &models.CampaignRegistration{
		ClientID:     clientID,
		Name:         name,
		Phone:        reservation.NormalizePhone(phone),
		RegisteredAt: s.now(),
	}
	if err := s.Flags.Save(ctx, registrationKeyPrefix+clientID, reg, 0); err != nil {
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}
	if err := s.Flags.SetFlag(ctx, registeredKeyPrefix+clientID, 0); err != nil {
		return nil, fmt.Errorf("failed to mark registration: %w", err)
	}
	s.logger().Info("whatsapp campaign registration", zap.String("clientID", clientID))
	return reg, nil
}

// DismissPopup hides the campaign popup for the rest of the browsing session.
func (s *Service) DismissPopup(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("missing session identifier")
	}
	ttl := s.DismissTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return s.Flags.SetFlag(ctx, dismissedKeyPrefix+sessionID, ttl)
}

// ShouldShowPopup is true until the client registers or dismisses the popup
// in this session.
func (s *Service) ShouldShowPopup(ctx context.Context, clientID, sessionID string) (bool, error) {
	if clientID != "" {
		registered, err := s.Flags.HasFlag(ctx, registeredKeyPrefix+clientID)
		if err != nil {
			return false, err
		}
		if registered {
			return false, nil
		}
	}
	if sessionID != "" {
		dismissed, err := s.Flags.HasFlag(ctx, dismissedKeyPrefix+sessionID)
		if err != nil {
			return false, err
		}
		if dismissed {
			return false, nil
		}
	}
	return true, nil
}
