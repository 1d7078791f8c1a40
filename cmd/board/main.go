package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/mwagner82/parrotbox/cmd/board/handlers"
	"github.com/mwagner82/parrotbox/cmd/board/middleware"
	"github.com/mwagner82/parrotbox/pkg/logger"
	"github.com/mwagner82/parrotbox/pkg/oddcast"
	"github.com/mwagner82/parrotbox/pkg/rotation"
	"github.com/mwagner82/parrotbox/pkg/telemetry"
)

const defaultCatalogURL = "https://cache-a.oddcast.com/tts/voices.json"

func main() {
	gin.SetMode(gin.ReleaseMode)
	logger.Setup(false)

	user := os.Getenv("BOARD_USER")
	password := os.Getenv("BOARD_PASSWORD")
	if user == "" || password == "" {
		logger.Fatal("BOARD_USER and BOARD_PASSWORD environment variables must be set")
	}
	sessionSecret := os.Getenv("BOARD_SESSION_SECRET")
	if sessionSecret == "" {
		logger.Fatal("BOARD_SESSION_SECRET environment variable must be set")
	}

	catalogURL := os.Getenv("BOARD_CATALOG_URL")
	if catalogURL == "" {
		catalogURL = defaultCatalogURL
	}
	soundDir := os.Getenv("BOARD_SOUND_DIR")
	if soundDir == "" {
		soundDir = "./sound-data"
	}
	dataDir := os.Getenv("BOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "./announce-data"
	}
	rotation.Init(dataDir)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "parrotbox-board")
	if err != nil {
		slog.Warn("Telemetry disabled", "error", err)
	} else {
		defer shutdown(ctx)
	}

	auth := &handlers.AuthHandler{User: user, Password: password}
	catalog := &handlers.CatalogHandler{Client: oddcast.NewClient(catalogURL)}
	queue := &handlers.QueueHandler{}
	sounds := &handlers.SoundHandler{Dir: soundDir}

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1"})

	store := cookie.NewStore([]byte(sessionSecret))
	router.Use(sessions.Sessions("board_session", store))

	router.POST("/api/login", auth.Login)
	router.POST("/api/logout", auth.Logout)

	// The announcer fetches filler sounds without a session.
	router.GET("/api/random-sound", sounds.Random)

	authorized := router.Group("/api", middleware.AuthRequired)
	authorized.GET("/languages", catalog.Languages)
	authorized.GET("/voices", catalog.Voices)
	authorized.GET("/voices/:name", catalog.Voice)
	authorized.GET("/queue", queue.List)
	authorized.POST("/queue", queue.Add)
	authorized.GET("/sounds", sounds.List)
	authorized.POST("/sounds", sounds.Upload)

	slog.Info("Board is running", "addr", ":8080")
	if err := router.Run(":8080"); err != nil {
		logger.Fatal("Failed to run server", "error", err)
	}
}
