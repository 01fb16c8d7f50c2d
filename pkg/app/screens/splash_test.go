package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/kerbaras/quran/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedProgress() <-chan services.SeedProgress {
	ch := make(chan services.SeedProgress)
	close(ch)
	return ch
}

func TestSplashBootstrap(t *testing.T) {
	calls := 0
	bootstrap := func(ctx context.Context, force bool) (services.SeedResult, error) {
		calls++
		assert.False(t, force)
		return services.SeedResult{Surahs: 114, Verses: 571}, nil
	}
	s := NewSplashScreen(context.Background(), bootstrap, closedProgress())
	assert.Contains(t, s.View(), "Noble Quran Engine")
	assert.Contains(t, s.View(), "Waking up engine...")

	msg := s.runBootstrap()
	assert.Equal(t, 1, calls)
	assert.Equal(t, BootstrapDoneMsg{Result: services.SeedResult{Surahs: 114, Verses: 571}}, msg)

	s.Update(msg)
	assert.True(t, s.done)
	assert.Contains(t, s.View(), "Ready")
}

func TestSplashProgress(t *testing.T) {
	progress := make(chan services.SeedProgress, 1)
	s := NewSplashScreen(context.Background(), nil, progress)
	s.Update(size(80, 24))

	progress <- services.SeedProgress{Stage: services.StageVerses, Surah: 2, Done: 10, Total: 40}
	msg := s.listenForProgress()

	_, cmd := s.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, statusIndexing, s.status)
	assert.Contains(t, s.View(), "Pre-indexing Quran...")
	assert.Contains(t, s.View(), "10/40")

	close(progress)
	assert.Nil(t, s.listenForProgress())
}

func TestSplashStopsListeningAfterLastStage(t *testing.T) {
	for _, stage := range []string{services.StageDone, services.StageSkipped} {
		s := NewSplashScreen(context.Background(), nil, make(chan services.SeedProgress))

		_, cmd := s.Update(services.SeedProgress{Stage: stage, Done: 571, Total: 571})
		assert.Nil(t, cmd, stage)
		assert.Equal(t, statusReady, s.status, stage)
	}

	s := NewSplashScreen(context.Background(), nil, make(chan services.SeedProgress))
	_, cmd := s.Update(services.SeedProgress{Stage: services.StageCheck})
	assert.NotNil(t, cmd)
}

func TestSplashErrorAndRetry(t *testing.T) {
	fail := true
	bootstrap := func(ctx context.Context, force bool) (services.SeedResult, error) {
		if fail {
			return services.SeedResult{}, errors.New("store unavailable: disk full")
		}
		return services.SeedResult{Skipped: true}, nil
	}
	s := NewSplashScreen(context.Background(), bootstrap, closedProgress())

	s.Update(s.runBootstrap())
	assert.False(t, s.done)
	assert.Contains(t, s.View(), "Error: store unavailable: disk full")

	fail = false
	_, cmd := s.Update(key("r"))
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.True(t, s.done)
	assert.Nil(t, s.err)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, statusWaking, statusFor(services.StageCheck))
	assert.Equal(t, statusIndexing, statusFor(services.StageSurahs))
	assert.Equal(t, statusIndexing, statusFor(services.StageVerses))
	assert.Equal(t, statusReady, statusFor(services.StageDone))
	assert.Equal(t, statusReady, statusFor(services.StageSkipped))
}
