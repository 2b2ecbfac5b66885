package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/mocks"
	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

func TestSettingsDefaultsWhenUnsaved(t *testing.T) {
	svc := service.NewSettingsService(mocks.NewMockSettingsRepository(), zerolog.Nop())

	settings, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.Theme != "system" || settings.Language != "en" {
		t.Errorf("unexpected defaults %+v", settings)
	}
	if !settings.Notifications || !settings.AutoSave {
		t.Errorf("notifications and auto save default on, got %+v", settings)
	}
	if settings.DefaultWordCount != 1000 {
		t.Errorf("default word count = %d, want 1000", settings.DefaultWordCount)
	}
}

func TestSettingsPartialUpdate(t *testing.T) {
	repo := mocks.NewMockSettingsRepository()
	svc := service.NewSettingsService(repo, zerolog.Nop())

	theme := "dark"
	words := 1500
	updated, err := svc.Update(context.Background(), "user-1", &models.SettingsUpdateRequest{
		Theme:            &theme,
		DefaultWordCount: &words,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Theme != "dark" || updated.DefaultWordCount != 1500 {
		t.Errorf("update not applied: %+v", updated)
	}
	// Untouched fields keep their defaults
	if updated.Language != "en" || updated.DefaultTone != "professional" {
		t.Errorf("unset fields must keep defaults, got %+v", updated)
	}

	stored, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get after update failed: %v", err)
	}
	if stored.Theme != "dark" {
		t.Errorf("update was not persisted, got %+v", stored)
	}
}

func TestSettingsUpdateValidation(t *testing.T) {
	svc := service.NewSettingsService(mocks.NewMockSettingsRepository(), zerolog.Nop())
	ctx := context.Background()

	theme := "neon"
	if _, err := svc.Update(ctx, "user-1", &models.SettingsUpdateRequest{Theme: &theme}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected rejection of unknown theme, got %v", err)
	}

	words := 10
	if _, err := svc.Update(ctx, "user-1", &models.SettingsUpdateRequest{DefaultWordCount: &words}); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected rejection of tiny word count, got %v", err)
	}
}

func TestSettingsReset(t *testing.T) {
	repo := mocks.NewMockSettingsRepository()
	svc := service.NewSettingsService(repo, zerolog.Nop())
	ctx := context.Background()

	theme := "dark"
	if _, err := svc.Update(ctx, "user-1", &models.SettingsUpdateRequest{Theme: &theme}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	reset, err := svc.Reset(ctx, "user-1")
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if reset.Theme != "system" {
		t.Errorf("reset theme = %q, want system", reset.Theme)
	}

	stored, _ := svc.Get(ctx, "user-1")
	if stored.Theme != "system" {
		t.Errorf("reset was not persisted, got %+v", stored)
	}
}
