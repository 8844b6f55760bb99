package ports

import (
	"context"

	"community-media-api/internal/domain/settings"
)

type SettingsService interface {
	// GetSettings never fails: missing or unparseable keys fall back to
	// hard-coded defaults.
	GetSettings(ctx context.Context) settings.MediaSettings
	Invalidate()
	UpdateSettings(ctx context.Context, p settings.Partial) error
}
