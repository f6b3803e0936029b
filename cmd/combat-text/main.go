// Command combat-text spawns floating damage numbers at a fixed rate and draws
// them in the terminal, showing the live count and frame rate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/combat-text/audio"
	"github.com/lixenwraith/combat-text/config"
	"github.com/lixenwraith/combat-text/core"
	"github.com/lixenwraith/combat-text/engine"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	debug := flag.Bool("debug", false, "Write debug logs to logs/combat-text.log")
	fps := flag.Int("fps", 0, "Target frame rate, overrides the config when positive")
	mute := flag.Bool("mute", false, "Disable audio")
	printConfig := flag.Bool("print-config", false, "Print the effective config as TOML and exit")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "combat-text: %v\n", err)
		os.Exit(1)
	}
	if *fps > 0 {
		cfg.Display.FPS = *fps
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	if *printConfig {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "combat-text: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "combat-text: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Non-fatal, the demo runs without sound
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	d, err := newDemo(cfg, screen, engine.NewMonotonicTimeProvider(), sound)
	if err != nil {
		return err
	}
	log.Printf("Starting: capacity %d, %d spawns per frame at %d FPS",
		cfg.Feature.Capacity, cfg.Spawn.PerFrame, cfg.Display.FPS)

	scheduler := engine.NewFrameScheduler(cfg.FrameInterval(), d.tick, func(err error) {
		log.Printf("Frame error: %v", err)
	})
	scheduler.Start()
	defer scheduler.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for ev := range eventChan {
		if !d.handleEvent(ev) {
			break
		}
	}

	played, dropped := sound.Counts()
	log.Printf("Stopped after %d frames; %d cues played, %d dropped", scheduler.Frames(), played, dropped)
	return nil
}
