package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/quran/pkg/services"
)

func TestNewProgressTracker(t *testing.T) {
	tracker := NewProgressTracker(80)

	if tracker == nil {
		t.Fatal("Expected tracker to be created")
	}

	if tracker.width != 80 {
		t.Errorf("Expected width 80, got %d", tracker.width)
	}

	if tracker.Stage() != "" {
		t.Errorf("Expected no stage, got %q", tracker.Stage())
	}
}

func TestUpdate(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.SeedProgress{Stage: services.StageVerses, Surah: 2, Done: 50, Total: 200})

	if tracker.Stage() != services.StageVerses {
		t.Errorf("Expected stage %q, got %q", services.StageVerses, tracker.Stage())
	}

	if tracker.Percent() != 0.25 {
		t.Errorf("Expected 0.25, got %f", tracker.Percent())
	}
}

func TestPercentFinished(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.SeedProgress{Stage: services.StageSkipped})
	if tracker.Percent() != 1 {
		t.Errorf("Expected skipped run to be complete, got %f", tracker.Percent())
	}

	tracker.Update(services.SeedProgress{Stage: services.StageDone, Done: 10, Total: 10})
	if tracker.Percent() != 1 {
		t.Errorf("Expected done run to be complete, got %f", tracker.Percent())
	}
}

func TestPercentZeroTotal(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.SeedProgress{Stage: services.StageCheck})

	if tracker.Percent() != 0 {
		t.Errorf("Expected 0, got %f", tracker.Percent())
	}
}

func TestViewEmpty(t *testing.T) {
	tracker := NewProgressTracker(80)

	view := tracker.View()

	if view != "" {
		t.Errorf("Expected empty view, got: %s", view)
	}
}

func TestViewWithProgress(t *testing.T) {
	tracker := NewProgressTracker(40)

	tracker.Update(services.SeedProgress{Stage: services.StageVerses, Done: 10, Total: 20})

	view := tracker.View()

	if !strings.Contains(view, "verses") {
		t.Error("Expected stage in view")
	}

	if !strings.Contains(view, "10/20") {
		t.Error("Expected verse progress in view")
	}

	if !strings.Contains(view, "50%") {
		t.Error("Expected percentage in view")
	}
}

func TestRenderProgressBar(t *testing.T) {
	bar := renderProgressBar(0.5, 20)

	if strings.Count(bar, "█") != 10 {
		t.Errorf("Expected 10 filled chars, got %d", strings.Count(bar, "█"))
	}

	if strings.Count(bar, "░") != 10 {
		t.Errorf("Expected 10 empty chars, got %d", strings.Count(bar, "░"))
	}
}

func TestRenderProgressBarZeroWidth(t *testing.T) {
	bar := renderProgressBar(0.5, 0)

	if bar != "" {
		t.Errorf("Expected empty string for zero width, got: %s", bar)
	}
}

func TestRenderProgressBarFull(t *testing.T) {
	bar := renderProgressBar(1.5, 20)

	if strings.Count(bar, "█") != 20 {
		t.Errorf("Expected 20 filled chars, got %d", strings.Count(bar, "█"))
	}
}

func TestSimpleProgress(t *testing.T) {
	bar := SimpleProgress(25, 100, 40)

	filled := strings.Count(bar, "█")
	empty := strings.Count(bar, "░")

	if filled != 10 {
		t.Errorf("Expected 10 filled chars, got %d", filled)
	}

	if empty != 30 {
		t.Errorf("Expected 30 empty chars, got %d", empty)
	}

	if SimpleProgress(1, 0, 40) != "" {
		t.Error("Expected empty bar for zero total")
	}
}
