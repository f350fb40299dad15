package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/repository"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// PreferenceService persists per-session display preferences. It backs
// the session layer's PreferenceStore.
type PreferenceService struct {
	repo   repository.PreferenceRepository
	logger *zap.Logger
}

// NewPreferenceService constructs a preference service.
func NewPreferenceService(repo repository.PreferenceRepository, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{repo: repo, logger: logger}
}

func themeKey(sessionID string) string {
	return "prefs:theme:" + sessionID
}

// ThemeDark loads the stored theme flag. Missing keys default to light.
func (s *PreferenceService) ThemeDark(ctx context.Context, sessionID string) (bool, error) {
	var dark bool
	err := s.repo.Get(ctx, themeKey(sessionID), &dark)
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}
	return dark, nil
}

// SetThemeDark stores the theme flag without expiry.
func (s *PreferenceService) SetThemeDark(ctx context.Context, sessionID string, dark bool) error {
	return s.repo.Set(ctx, themeKey(sessionID), dark, 0)
}
