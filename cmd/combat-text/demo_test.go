package main

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/combat-text/audio"
	"github.com/lixenwraith/combat-text/config"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	mu    sync.Mutex
	cells int
	shows int
	syncs int
}

func (m *MockScreen) Size() (int, int) { return 80, 24 }
func (m *MockScreen) Clear()           {}
func (m *MockScreen) Show() {
	m.mu.Lock()
	m.shows++
	m.mu.Unlock()
}
func (m *MockScreen) Sync() { m.syncs++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	m.cells++
	m.mu.Unlock()
}

type stepProvider struct {
	now time.Time
}

func (p *stepProvider) Now() time.Time { return p.now }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Feature.Capacity = 256
	cfg.Spawn.PerFrame = 10
	cfg.Audio.Enabled = false
	return cfg
}

func newTestDemo(t *testing.T, cfg *config.Config) (*demo, *MockScreen, *stepProvider) {
	t.Helper()
	screen := &MockScreen{}
	provider := &stepProvider{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	d, err := newDemo(cfg, screen, provider, audio.NewSoundManager(cfg.AudioConfig()))
	if err != nil {
		t.Fatalf("newDemo failed: %v", err)
	}
	return d, screen, provider
}

func TestTickSpawnsAndPresents(t *testing.T) {
	d, screen, _ := newTestDemo(t, testConfig())

	if err := d.tick(0); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if d.last.Flushed != 10 || d.last.Visible != 10 {
		t.Errorf("Expected 10 flushed and visible, got %+v", d.last)
	}
	if screen.shows != 1 {
		t.Errorf("Expected one frame shown, got %d", screen.shows)
	}
	if screen.cells == 0 {
		t.Error("Expected cells drawn")
	}
	if got := d.feature.DrawArgs().InstanceCount(); got != 10 {
		t.Errorf("Expected 10 instances, got %d", got)
	}
}

func TestTickExpiresRecords(t *testing.T) {
	cfg := testConfig()
	d, _, provider := newTestDemo(t, cfg)

	_ = d.tick(0)
	provider.now = provider.now.Add(2 * time.Second)
	cfg.Spawn.PerFrame = 0
	_ = d.tick(1)

	if d.last.Visible != 0 {
		t.Errorf("Expected every record expired, got %d visible", d.last.Visible)
	}
}

func TestFPSReadout(t *testing.T) {
	d, _, provider := newTestDemo(t, testConfig())

	// 31 frames so the elapsed time crosses the one-second refresh
	for i := 0; i < 31; i++ {
		provider.now = provider.now.Add(time.Second / 30)
		_ = d.tick(uint64(i))
	}
	if d.fps < 29 || d.fps > 31 {
		t.Errorf("Expected about 30 FPS, got %v", d.fps)
	}
}

func TestHandleEventQuit(t *testing.T) {
	d, _, _ := newTestDemo(t, testConfig())

	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d.handleEvent(tt.ev) {
				t.Error("Expected exit")
			}
		})
	}
}

func TestHandleEventPause(t *testing.T) {
	d, _, _ := newTestDemo(t, testConfig())
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	if !d.handleEvent(space) || !d.clock.IsPaused() {
		t.Fatal("Expected space to pause and continue running")
	}
	_ = d.tick(0)
	if d.feature.Queue().Stats().Enqueued != 0 {
		t.Error("Expected no spawns while paused")
	}

	d.handleEvent(space)
	if d.clock.IsPaused() {
		t.Error("Expected second space to resume")
	}
}

func TestHandleEventHit(t *testing.T) {
	d, _, _ := newTestDemo(t, testConfig())

	d.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	if got := d.feature.Queue().Stats().Enqueued; got != 1 {
		t.Errorf("Expected one manual hit, got %d", got)
	}
}

func TestHitRequiresSyncedRing(t *testing.T) {
	cfg := testConfig()
	cfg.Feature.Synced = false
	d, _, _ := newTestDemo(t, cfg)

	if d.hit() {
		t.Error("Expected manual hit refused on an unsynchronized ring")
	}
}

func TestConcurrentHitsDuringTicks(t *testing.T) {
	d, _, _ := newTestDemo(t, testConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			d.hit()
		}
	}()
	for i := 0; i < 50; i++ {
		if err := d.tick(uint64(i)); err != nil {
			t.Fatalf("tick failed: %v", err)
		}
	}
	wg.Wait()

	stats := d.feature.Queue().Stats()
	if want := uint64(200 + 50*10); stats.Enqueued != want {
		t.Errorf("Expected %d enqueued, got %d", want, stats.Enqueued)
	}
}
