package server

import (
	"log"
	"time"

	"Nightfall/internal/game"
)

// StartApp loads story content and assets per cfg, builds the session
// hub, and runs the simulation and HTTP layers. Blocks for the life of
// the process.
func StartApp(cfg AppConfig) {
	assets := game.LoadCatalog(cfg.AssetDir)

	var scenes []*game.Scene
	if cfg.ScriptDir != "" {
		loaded, err := game.LoadScenes(cfg.ScriptDir)
		if err != nil {
			log.Fatalf("failed to load scripts: %v", err)
		}
		scenes = loaded
	}
	if len(scenes) == 0 {
		scenes = game.SeedScenes()
		log.Printf("no scripts configured, using built-in story (%d scenes)", len(scenes))
	}
	scenes = reorderScenes(scenes, cfg.StartScene)

	hub := game.NewHub(scenes, assets)

	// Fixed-rate simulation: every session advances SimHz times a second.
	go func() {
		ticker := time.NewTicker(time.Duration(1000.0/game.SimHz) * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			hub.TickAll()
		}
	}()

	// Periodic cleanup of abandoned sessions (every 60 seconds).
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			hub.CleanupIdleSessions()
		}
	}()

	log.Printf("starting web server on %s (%d scenes, %d audio assets)",
		cfg.Addr, len(scenes), assets.AudioCount())
	startServer(hub, cfg.Addr, cfg.AssetDir)
}

// reorderScenes rotates the list so the named scene plays first. Useful
// for jumping straight to a scene while authoring scripts.
func reorderScenes(scenes []*game.Scene, startID string) []*game.Scene {
	if startID == "" {
		return scenes
	}
	for i, s := range scenes {
		if s.ID == startID {
			return append(scenes[i:len(scenes):len(scenes)], scenes[:i]...)
		}
	}
	log.Printf("start scene %q not found, keeping authored order", startID)
	return scenes
}
