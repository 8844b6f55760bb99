package compressor

import (
	"bytes"
	"context"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"

	"community-media-api/internal/domain/media"
)

// PassThrough is the built-in compressor: it hands files through
// unchanged and only probes image dimensions. Actual transcoding and
// downscaling run in a separate service behind the same port.
type PassThrough struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *PassThrough {
	return &PassThrough{logger: logger}
}

func (p *PassThrough) Compress(_ context.Context, f media.File, _ media.EntityType) (media.File, error) {
	return f, nil
}

func (p *PassThrough) Dimensions(f media.File) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return 0, 0, err
	}

	return cfg.Width, cfg.Height, nil
}
