package application_test

import (
	"context"
	"errors"
	"testing"

	memoryadapter "anjett/contexts/identity-access/admin-gate/adapters/memory"
	"anjett/contexts/identity-access/admin-gate/application"
	domainerrors "anjett/contexts/identity-access/admin-gate/domain/errors"
)

func newService() application.Service {
	store := memoryadapter.NewStore()
	return application.Service{Repository: store, Minter: store}
}

func TestToggleMintsTokenOnEnable(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	enabled, token, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !enabled || token == "" {
		t.Fatalf("expected enable to return a token, got enabled=%v token=%q", enabled, token)
	}

	status, err := svc.Status(ctx)
	if err != nil || !status {
		t.Fatalf("expected status enabled, got %v err=%v", status, err)
	}
	if err := svc.Verify(ctx, token); err != nil {
		t.Fatalf("minted token must verify: %v", err)
	}
}

func TestToggleDisableRevokesToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, token, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	enabled, disabledToken, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if enabled || disabledToken != "" {
		t.Fatalf("expected disable to return no token, got enabled=%v token=%q", enabled, disabledToken)
	}
	if err := svc.Verify(ctx, token); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected revoked token to fail verification, got %v", err)
	}
}

func TestVerifyRejectsWrongToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, _, err := svc.Toggle(ctx); err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	if err := svc.Verify(ctx, "not-the-token"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.Verify(ctx, ""); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestReenableMintsFreshToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, first, _ := svc.Toggle(ctx)
	_, _, _ = svc.Toggle(ctx)
	_, second, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("re-enable failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected a fresh token on re-enable")
	}
	if err := svc.Verify(ctx, first); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("old token must not verify after re-enable, got %v", err)
	}
	if err := svc.Verify(ctx, second); err != nil {
		t.Fatalf("new token must verify: %v", err)
	}
}
