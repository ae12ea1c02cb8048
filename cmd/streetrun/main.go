package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"chosenoffset.com/streetrun/internal/audio"
	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/game"
	ebitenrender "chosenoffset.com/streetrun/internal/render/ebiten"
)

func main() {
	var (
		configPath  = flag.String("config", "data/config.json", "path to the tuning override file")
		profileMode = flag.Bool("profile", false, "write a CPU profile for this session")
		mute        = flag.Bool("mute", false, "disable audio output")
	)
	flag.Parse()

	if *profileMode {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	screenWidth := 960
	screenHeight := 640

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	// Audio degrades to silence if the speaker cannot start.
	var sound audio.Player = audio.NopPlayer{}
	if !*mute {
		beepPlayer, err := audio.NewBeepPlayer(cfg.MasterVolume)
		if err != nil {
			log.Printf("Warning: audio unavailable, running silent: %v", err)
		} else {
			sound = beepPlayer
		}
	}

	manager := game.NewManager(renderer, inputMgr, loader, sound, cfg, screenWidth, screenHeight)
	defer manager.Close()

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Street Run")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}
