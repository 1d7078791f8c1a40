package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mwagner82/parrotbox/pkg/config"
	"github.com/mwagner82/parrotbox/pkg/logger"
	"github.com/mwagner82/parrotbox/pkg/oddcast"
	"github.com/mwagner82/parrotbox/pkg/rotation"
	"github.com/mwagner82/parrotbox/pkg/speaker"
)

type announcer struct {
	cfg     *config.Config
	client  *oddcast.Client
	speaker *speaker.Speaker
}

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "announcer.yaml", "Path to the config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()
	logger.Setup(debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	rotation.Init(cfg.DataDir)

	spk, err := speaker.New()
	if err != nil {
		logger.Fatal("Failed to initialize audio output", "error", err)
	}

	a := &announcer{
		cfg:     cfg,
		client:  oddcast.NewClient(cfg.CatalogURL),
		speaker: spk,
	}

	a.sayPhrase(context.Background(), "Hello! I am back and ready!", cfg.Voice)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Failed to load timezone", "timezone", cfg.Timezone, "error", err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(&logger.CronLogger{Logger: slog.Default()})),
	)
	if _, err := c.AddFunc(cfg.Schedule, a.runCycle); err != nil {
		logger.Fatal("Invalid schedule", "schedule", cfg.Schedule, "error", err)
	}
	c.Start()
	slog.Info("Announcer running", "schedule", cfg.Schedule, "timezone", cfg.Timezone, "language", cfg.Language, "voice", cfg.Voice)

	select {}
}

func (a *announcer) runCycle() {
	ctx := context.Background()

	// Queued announcements from the board go first.
	item, err := rotation.Dequeue()
	if err != nil {
		slog.Error("Error checking announcement queue", "error", err)
	}
	if item != nil {
		slog.Info("Playing queued item", "type", item.Type, "text", item.Text)
		switch item.Type {
		case rotation.TypeSound:
			a.playSound(item.Text)
		case rotation.TypePhrase:
			a.sayPhrase(ctx, item.Text, item.Voice)
		}
		return
	}

	// Otherwise randomly choose between a phrase and a sound.
	if rand.Intn(2) == 0 {
		phrase := a.pickPhrase()
		if phrase == "" {
			slog.Info("No phrase to announce this cycle")
			return
		}
		a.sayPhrase(ctx, phrase, a.cfg.Voice)
	} else {
		a.playRandomSound()
	}
}

// pickPhrase does a weighted random draw over the configured phrases,
// skipping anything spoken within the retention window. When everything was
// spoken recently the full list is back in play.
func (a *announcer) pickPhrase() string {
	candidates := make([]config.Phrase, len(a.cfg.Phrases))
	copy(candidates, a.cfg.Phrases)

	recent, err := rotation.SpokenWithin(a.cfg.RetentionWindow())
	if err != nil {
		slog.Error("Error reading spoken history", "error", err)
	} else {
		for i, p := range candidates {
			if recent[p.Text] {
				candidates[i].Weight = 0
			}
		}
	}

	total := 0
	for _, p := range candidates {
		total += p.Weight
	}
	if total == 0 && len(a.cfg.Phrases) > 0 {
		slog.Info("All phrases spoken recently, resetting rotation for this round")
		candidates = a.cfg.Phrases
		for _, p := range candidates {
			total += p.Weight
		}
	}
	if total <= 0 {
		return ""
	}

	r := rand.Intn(total)
	for _, p := range candidates {
		r -= p.Weight
		if r < 0 {
			return p.Text
		}
	}
	return ""
}

func (a *announcer) sayPhrase(ctx context.Context, text, voiceName string) {
	if text == "" {
		slog.Info("nothing to say")
		return
	}
	if voiceName == "" {
		voiceName = a.cfg.Voice
	}

	// The catalog is fetched fresh every time; the remote document is the
	// single source of truth for voice identifiers.
	catalog, err := a.client.LoadCatalog(ctx)
	if err != nil {
		return // the client already logged the failure
	}
	voice, ok := catalog.FindVoice(voiceName)
	if !ok {
		slog.Error("voice not found in catalog", "voice", voiceName)
		return
	}

	slog.Info("saying", "text", text, "voice", voice.Name)
	audio, err := a.client.Say(ctx, voice, text)
	if err != nil {
		return
	}
	if err := a.speaker.PlayMP3(audio); err != nil {
		slog.Error("failed to play announcement", "error", err)
		return
	}

	item := rotation.Item{Text: text, Voice: voice.Name, Type: rotation.TypePhrase}
	if err := rotation.MarkSpoken(item, a.cfg.RetentionWindow()); err != nil {
		slog.Error("Error recording spoken item", "error", err)
	}
	slog.Info("finished saying", "text", text)
}

func (a *announcer) playSound(name string) {
	path := filepath.Join(a.cfg.SoundDir, name)
	slog.Info("playing", "filename", name)
	if err := a.speaker.PlayFile(path); err != nil {
		slog.Error("failed to play sound file", "file", path, "error", err)
		return
	}

	item := rotation.Item{Text: name, Type: rotation.TypeSound}
	if err := rotation.MarkSpoken(item, a.cfg.RetentionWindow()); err != nil {
		slog.Error("Error recording spoken item", "error", err)
	}
	slog.Info("finished playing", "filename", name)
}

func (a *announcer) playRandomSound() {
	allFiles, err := os.ReadDir(a.cfg.SoundDir)
	if err != nil {
		slog.Error("failed to read sound directory", "dir", a.cfg.SoundDir, "error", err)
		return
	}

	var audioFiles []string
	for _, file := range allFiles {
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if !file.IsDir() && (ext == ".wav" || ext == ".mp3") {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	var available []string
	recent, err := rotation.SpokenWithin(a.cfg.RetentionWindow())
	if err != nil {
		slog.Error("Error reading spoken history", "error", err)
		available = audioFiles
	} else {
		for _, name := range audioFiles {
			if !recent[name] {
				available = append(available, name)
			}
		}
	}

	if len(available) == 0 && len(audioFiles) > 0 {
		slog.Info("All sounds played recently, resetting rotation for this round")
		available = audioFiles
	}
	if len(available) == 0 {
		slog.Info("no .wav or .mp3 files found, skipping")
		return
	}

	a.playSound(available[rand.Intn(len(available))])
}
