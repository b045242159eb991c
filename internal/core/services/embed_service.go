package services

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kamal-hamza/uigen/internal/core/domain"
	"github.com/kamal-hamza/uigen/internal/core/ports"
	"github.com/kamal-hamza/uigen/pkg/logging"
)

// EmbedService wraps a text asset in a raw string literal source fragment
type EmbedService struct {
	store  ports.AssetStore
	perm   os.FileMode
	logger *zap.Logger
}

// NewEmbedService creates a new embed service
func NewEmbedService(store ports.AssetStore, perm os.FileMode, logger *zap.Logger) *EmbedService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &EmbedService{
		store:  store,
		perm:   perm,
		logger: logger,
	}
}

// GenerateRequest represents a request to generate one source file
type GenerateRequest struct {
	InputPath  string
	OutputPath string
}

// GenerateResponse represents the result of a generation
type GenerateResponse struct {
	InputPath          string
	OutputPath         string
	InputBytes         int
	OutputBytes        int
	DelimiterCollision bool // Content contains )" and will end the literal early
}

// Generate reads the asset, wraps it and writes the result.
// Nothing is written when the read fails.
func (s *EmbedService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	content, err := s.store.Read(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrInput, req.InputPath, err)
	}

	payload := domain.NewPayload(req.InputPath, content)
	s.logger.Debug("read asset",
		zap.String("path", payload.Source),
		zap.Int("bytes", payload.Size()))

	collision := payload.HasDelimiter()
	if collision {
		s.logger.Info("asset contains raw string delimiter",
			zap.String("path", payload.Source),
			zap.String("delimiter", domain.Delimiter))
	}

	out := payload.Render()
	if err := s.store.Write(ctx, req.OutputPath, out, s.perm); err != nil {
		return nil, fmt.Errorf("%w: failed to write %s: %w", domain.ErrOutput, req.OutputPath, err)
	}

	s.logger.Debug("wrote source",
		zap.String("path", req.OutputPath),
		zap.Int("bytes", len(out)))

	return &GenerateResponse{
		InputPath:          payload.Source,
		OutputPath:         req.OutputPath,
		InputBytes:         payload.Size(),
		OutputBytes:        len(out),
		DelimiterCollision: collision,
	}, nil
}
