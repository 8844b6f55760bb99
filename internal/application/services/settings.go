package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"community-media-api/internal/application/ports"
	domain "community-media-api/internal/domain/settings"
)

// SettingsResolver caches media policy loaded from the key-value
// settings table. The cache is owned by the instance, lazily populated
// and only dropped by an explicit Invalidate; it never time-expires.
type SettingsResolver struct {
	settingsRepository domain.Repository
	logger             *zap.Logger

	mu        sync.Mutex
	cached    domain.MediaSettings
	populated bool
}

func NewSettingsResolver(
	settingsRepository domain.Repository,
	logger *zap.Logger,
) ports.SettingsService {
	return &SettingsResolver{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

func (sr *SettingsResolver) GetSettings(ctx context.Context) domain.MediaSettings {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if sr.populated {
		return sr.cached
	}

	s := domain.Defaults()

	kv, err := sr.settingsRepository.FetchAll(ctx)
	if err != nil {
		// not cached: the next call retries the store
		sr.logger.Warn("settings fetch failed, serving defaults", zap.Error(err))
		return s
	}

	sr.parseInt(kv, domain.KeyMaxFileSizeMB, &s.MaxFileSizeMB)
	sr.parseInt(kv, domain.KeyMaxImagesPerPost, &s.MaxImagesPerPost)
	sr.parseInt(kv, domain.KeyMaxImagesPerGeography, &s.MaxImagesPerGeography)
	sr.parseInt(kv, domain.KeyMaxImageDimension, &s.MaxImageDimension)
	sr.parseTypes(kv, domain.KeyAllowedTypes, &s.AllowedTypes)

	sr.cached = s
	sr.populated = true

	return s
}

// parseInt overwrites dst only when the key is present and parses to a
// positive integer, so one bad key never spoils the others.
func (sr *SettingsResolver) parseInt(kv map[string]string, key string, dst *int) {
	raw, ok := kv[key]
	if !ok {
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		sr.logger.Warn("unparseable settings key, keeping default",
			zap.String("key", key), zap.String("value", raw))
		return
	}
	*dst = n
}

func (sr *SettingsResolver) parseTypes(kv map[string]string, key string, dst *[]string) {
	raw, ok := kv[key]
	if !ok {
		return
	}
	var types []string
	if err := json.Unmarshal([]byte(raw), &types); err != nil || len(types) == 0 {
		sr.logger.Warn("unparseable settings key, keeping default",
			zap.String("key", key), zap.String("value", raw))
		return
	}
	*dst = types
}

func (sr *SettingsResolver) Invalidate() {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.populated = false
}

// UpdateSettings upserts each provided key individually, leaving
// unrelated keys untouched, and invalidates the cache once anything
// was written.
func (sr *SettingsResolver) UpdateSettings(ctx context.Context, p domain.Partial) error {
	wrote := false
	defer func() {
		if wrote {
			sr.Invalidate()
		}
	}()

	upsertInt := func(key string, v *int) error {
		if v == nil {
			return nil
		}
		if err := sr.settingsRepository.Upsert(ctx, key, strconv.Itoa(*v)); err != nil {
			return err
		}
		wrote = true
		return nil
	}

	if err := upsertInt(domain.KeyMaxFileSizeMB, p.MaxFileSizeMB); err != nil {
		return err
	}
	if err := upsertInt(domain.KeyMaxImagesPerPost, p.MaxImagesPerPost); err != nil {
		return err
	}
	if err := upsertInt(domain.KeyMaxImagesPerGeography, p.MaxImagesPerGeography); err != nil {
		return err
	}
	if err := upsertInt(domain.KeyMaxImageDimension, p.MaxImageDimension); err != nil {
		return err
	}

	if p.AllowedTypes != nil {
		b, err := json.Marshal(p.AllowedTypes)
		if err != nil {
			return err
		}
		if err = sr.settingsRepository.Upsert(ctx, domain.KeyAllowedTypes, string(b)); err != nil {
			return err
		}
		wrote = true
	}

	return nil
}
