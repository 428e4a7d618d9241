package main

import (
	"flag"

	"Nightfall/internal/server"
)

func main() {
	addr := flag.String("addr", "", "address to listen on (e.g., 127.0.0.1:8080)")
	configPath := flag.String("config", "configs/novel.json", "path to server config JSON")
	scriptDir := flag.String("scripts", "", "directory of scene script JSON files")
	assetDir := flag.String("assets", "", "directory of audio and image assets")
	startScene := flag.String("start-scene", "", "scene id to start from (authoring shortcut)")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.ConfigPath = *configPath
	cfg = server.ResolveConfig(cfg)

	// Flags win over file and environment.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *scriptDir != "" {
		cfg.ScriptDir = *scriptDir
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}
	if *startScene != "" {
		cfg.StartScene = *startScene
	}

	server.StartApp(cfg)
}
