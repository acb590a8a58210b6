package application

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"

	"anjett/contexts/identity-access/admin-gate/domain/entities"
	domainerrors "anjett/contexts/identity-access/admin-gate/domain/errors"
	"anjett/contexts/identity-access/admin-gate/ports"
)

// Service owns the moderation switch. Enabling mints a fresh capability
// token; disabling revokes it. Other modules verify tokens through Verify
// instead of reading the switch directly.
type Service struct {
	Repository ports.Repository
	Minter     ports.TokenMinter
	Logger     *slog.Logger
}

func (s Service) Status(ctx context.Context) (bool, error) {
	state, err := s.Repository.Load(ctx)
	if err != nil {
		return false, err
	}
	return state.Enabled, nil
}

// Toggle flips the switch. On enable it returns the plain token exactly
// once; on disable the token is empty and any outstanding token stops
// verifying.
func (s Service) Toggle(ctx context.Context) (bool, string, error) {
	logger := ResolveLogger(s.Logger)

	state, err := s.Repository.Load(ctx)
	if err != nil {
		return false, "", err
	}

	if state.Enabled {
		if err := s.Repository.Save(ctx, entities.AdminState{}); err != nil {
			return false, "", err
		}
		logger.Info("moderation disabled",
			"event", "moderation_disabled",
			"module", "identity-access/admin-gate",
			"layer", "application",
		)
		return false, "", nil
	}

	token, err := s.Minter.NewToken(ctx)
	if err != nil {
		return false, "", err
	}
	if err := s.Repository.Save(ctx, entities.AdminState{Enabled: true, TokenHash: hashToken(token)}); err != nil {
		return false, "", err
	}
	logger.Info("moderation enabled",
		"event", "moderation_enabled",
		"module", "identity-access/admin-gate",
		"layer", "application",
	)
	return true, token, nil
}

// Verify checks a capability token against the stored state.
func (s Service) Verify(ctx context.Context, token string) error {
	state, err := s.Repository.Load(ctx)
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if !state.Enabled || token == "" {
		return domainerrors.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(hashToken(token)), []byte(state.TokenHash)) != 1 {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func hashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
