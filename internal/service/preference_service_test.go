package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/repository"
)

func TestPreferenceServiceThemeRoundTrip(t *testing.T) {
	svc := NewPreferenceService(repository.NewMemoryPreferenceRepository(), nil)
	ctx := context.Background()

	require.NoError(t, svc.SetThemeDark(ctx, "sess-1", true))

	dark, err := svc.ThemeDark(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, dark)
}

func TestPreferenceServiceDefaultsToLight(t *testing.T) {
	svc := NewPreferenceService(repository.NewMemoryPreferenceRepository(), nil)

	dark, err := svc.ThemeDark(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestPreferenceServiceIsolatesSessions(t *testing.T) {
	svc := NewPreferenceService(repository.NewMemoryPreferenceRepository(), nil)
	ctx := context.Background()

	require.NoError(t, svc.SetThemeDark(ctx, "a", true))

	dark, err := svc.ThemeDark(ctx, "b")
	require.NoError(t, err)
	assert.False(t, dark)
}
