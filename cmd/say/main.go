package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mwagner82/parrotbox/pkg/logger"
	"github.com/mwagner82/parrotbox/pkg/oddcast"
	"github.com/mwagner82/parrotbox/pkg/speaker"
)

const defaultCatalogURL = "https://cache-a.oddcast.com/tts/voices.json"

func main() {
	logger.Setup(false)

	var catalogURL string
	var voiceName string
	var text string
	var outputFile string
	var play bool
	flag.StringVar(&catalogURL, "catalog", defaultCatalogURL, "URL of the voice catalog")
	flag.StringVar(&voiceName, "voice", "Amy", "Voice name to synthesize with")
	flag.StringVar(&text, "text", "Hello from the parrot box", "Text to synthesize")
	flag.StringVar(&outputFile, "output", "say.mp3", "Output file path")
	flag.BoolVar(&play, "play", false, "Play through the speakers instead of writing a file")
	flag.Parse()

	if text == "" {
		logger.Fatal("Text to synthesize cannot be empty")
	}

	ctx := context.Background()
	client := oddcast.NewClient(catalogURL)

	catalog, err := client.LoadCatalog(ctx)
	if err != nil {
		logger.Fatal("Failed to load voice catalog", "error", err)
	}
	voice, ok := catalog.FindVoice(voiceName)
	if !ok {
		logger.Fatal("Voice not found in catalog", "voice", voiceName)
	}

	audio, err := client.Say(ctx, voice, text)
	if err != nil {
		logger.Fatal("Failed to synthesize text", "error", err)
	}

	if play {
		spk, err := speaker.New()
		if err != nil {
			logger.Fatal("Failed to initialize audio output", "error", err)
		}
		if err := spk.PlayMP3(audio); err != nil {
			logger.Fatal("Failed to play audio", "error", err)
		}
		return
	}

	if err := os.WriteFile(outputFile, audio, 0644); err != nil {
		logger.Fatal("Failed to write audio to file", "error", err)
	}
	slog.Info("Successfully synthesized text", "file", outputFile, "voice", voice.Name)
}
