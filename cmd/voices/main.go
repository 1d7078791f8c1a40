package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/mwagner82/parrotbox/pkg/logger"
	"github.com/mwagner82/parrotbox/pkg/oddcast"
)

const defaultCatalogURL = "https://cache-a.oddcast.com/tts/voices.json"

func main() {
	logger.Setup(false)

	var catalogURL string
	var language string
	var voice string
	flag.StringVar(&catalogURL, "catalog", defaultCatalogURL, "URL of the voice catalog")
	flag.StringVar(&language, "language", "", "List only the voices of this language")
	flag.StringVar(&voice, "voice", "", "Look up a single voice by name")
	flag.Parse()

	client := oddcast.NewClient(catalogURL)
	catalog, err := client.LoadCatalog(context.Background())
	if err != nil {
		logger.Fatal("Failed to load voice catalog", "error", err)
	}

	var result any
	switch {
	case voice != "":
		v, ok := catalog.FindVoice(voice)
		if !ok {
			logger.Fatal("Voice not found in catalog", "voice", voice)
		}
		result = v
	case language != "":
		result = catalog.Voices(language)
	default:
		result = catalog.Languages()
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("Error marshalling to JSON", "error", err)
	}
	fmt.Println(string(jsonData))
}
