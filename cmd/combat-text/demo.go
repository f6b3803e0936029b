package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/combat-text/audio"
	"github.com/lixenwraith/combat-text/config"
	"github.com/lixenwraith/combat-text/engine"
	"github.com/lixenwraith/combat-text/floating"
	"github.com/lixenwraith/combat-text/glyph"
	"github.com/lixenwraith/combat-text/parameter"
	"github.com/lixenwraith/combat-text/render"
)

// demo spawns random damage numbers every frame and draws them to the terminal
type demo struct {
	cfg       *config.Config
	screen    tcell.Screen
	clock     *engine.PausableClock
	feature   *engine.Feature[floating.Damage]
	spawner   *floating.Spawner[floating.Damage]
	burst     *floating.Burst
	presenter *render.Presenter[floating.Damage]
	sound     *audio.SoundManager

	mu          sync.Mutex
	last        engine.FrameStats
	fps         float64
	frames      int
	statusSince time.Time
	realNow     func() time.Time
}

func newDemo(cfg *config.Config, screen tcell.Screen, provider engine.TimeProvider, sound *audio.SoundManager) (*demo, error) {
	clock := engine.NewPausableClock(provider)

	feature, err := engine.NewFeature[floating.Damage](cfg.FeatureConfig(), clock, templateMesh())
	if err != nil {
		return nil, err
	}

	presenter := render.NewPresenter[floating.Damage](screen, render.Camera{Extent: cfg.Spawn.Extent}, cfg.Feature.Duration)
	presenter.Rise = cfg.Display.Rise
	feature.SetPresenter(presenter)

	d := &demo{
		cfg:       cfg,
		screen:    screen,
		clock:     clock,
		feature:   feature,
		spawner:   feature.Spawner(floating.NewDamage),
		burst:     floating.NewBurst(cfg.Spawn.Seed, cfg.Spawn.Extent, cfg.Spawn.Height, cfg.Spawn.MaxValue, cfg.Spawn.Styles),
		presenter: presenter,
		sound:     sound,
		realNow:   provider.Now,
	}
	d.statusSince = d.realNow()
	return d, nil
}

// templateMesh builds the per-instance quad mesh with a monospace cell metric;
// the terminal presenter draws characters directly but the draw arguments still
// describe the nine-quad template
func templateMesh() glyph.Mesh {
	return glyph.BuildTemplateMesh(cellMetrics{}, glyph.TemplateText)
}

// cellMetrics treats every atlas character as one 1x2 terminal cell
type cellMetrics struct{}

func (cellMetrics) Glyph(r rune) (glyph.GlyphInfo, bool) {
	return glyph.GlyphInfo{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2, Advance: 1}, true
}

// tick runs one frame: spawn a burst, flush, cull and present
func (d *demo) tick(frame uint64) error {
	if !d.clock.IsPaused() && d.cfg.Spawn.PerFrame > 0 {
		if _, err := d.spawner.SpawnBurst(d.burst, d.cfg.Spawn.PerFrame); err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		if d.sound != nil {
			d.sound.PlayHit(int(frame%uint64(d.cfg.Spawn.Styles)), glyph.RenderCharLength)
		}
	}

	d.presenter.SetStatus(d.status())
	stats, err := d.feature.Frame()
	d.record(stats)
	return err
}

// hit spawns one critical number at the origin. It runs on the input goroutine,
// so it needs the synchronized ring and draws from the locked global source
func (d *demo) hit() bool {
	if !d.cfg.Feature.Synced {
		log.Printf("Manual hit ignored: ring is not synchronized")
		return false
	}
	value := rand.Intn(d.cfg.Spawn.MaxValue)
	if err := d.spawner.Spawn(1, value, floating.Vec3{Y: d.cfg.Spawn.Height}); err != nil {
		log.Printf("Manual hit failed: %v", err)
		return false
	}
	if d.sound != nil {
		d.sound.PlayHit(1, glyph.DigitCount(value))
	}
	return true
}

// record folds a frame into the FPS counter
func (d *demo) record(stats engine.FrameStats) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = stats
	d.frames++
	now := d.realNow()
	if elapsed := now.Sub(d.statusSince); elapsed >= parameter.StatusInterval {
		d.fps = float64(d.frames) / elapsed.Seconds()
		d.frames = 0
		d.statusSince = now
	}
}

// status formats the readout shown on the bottom line
func (d *demo) status() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	q := d.feature.Queue()
	s := fmt.Sprintf(" Count: %d  Visible: %d  FPS: %.0f  Lapped: %d  [space] pause  [h] hit  [q] quit",
		q.Count(), d.last.Visible, d.fps, q.Stats().Lapped)
	if d.clock.IsPaused() {
		s += "  PAUSED"
	}
	return s
}

// handleEvent reacts to input; returns false when the demo should exit
func (d *demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				paused := d.clock.Toggle()
				log.Printf("Paused: %v", paused)
			case 'h':
				d.hit()
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}
