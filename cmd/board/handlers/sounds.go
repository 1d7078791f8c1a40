package handlers

import (
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	uploadsCounter metric.Int64Counter
)

func init() {
	var err error
	meter := otel.Meter("github.com/mwagner82/parrotbox/cmd/board")
	uploadsCounter, err = meter.Int64Counter("board.uploads",
		metric.WithDescription("Total number of sound files uploaded"),
		metric.WithUnit("{files}"),
	)
	if err != nil {
		slog.Error("Failed to create upload metrics", "error", err)
	}
}

// SoundHandler manages the shared sound directory that the announcer plays
// from.
type SoundHandler struct {
	Dir string
}

func (h *SoundHandler) soundFiles() []string {
	files, err := os.ReadDir(h.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(h.Dir, 0755); err != nil {
				slog.Error("Failed to create sound directory", "error", err)
			}
			return nil
		}
		slog.Error("Failed to read sound directory", "error", err)
		return nil
	}

	var names []string
	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if !file.IsDir() && (ext == ".mp3" || ext == ".wav") {
			names = append(names, file.Name())
		}
	}
	return names
}

func (h *SoundHandler) List(c *gin.Context) {
	names := h.soundFiles()
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

func (h *SoundHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("soundFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "soundFile form field required"})
		return
	}

	name := filepath.Base(file.Filename)
	ext := filepath.Ext(name)
	if ext != ".mp3" && ext != ".wav" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .mp3 and .wav files are accepted"})
		return
	}

	dst := filepath.Join(h.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		slog.Error("Failed to save uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	uploadsCounter.Add(c.Request.Context(), 1)
	slog.Info("Sound uploaded", "filename", name)
	c.JSON(http.StatusCreated, gin.H{"filename": name})
}

// Random streams a randomly chosen sound file. The endpoint is public so the
// announcer can fetch filler sounds without a session.
func (h *SoundHandler) Random(c *gin.Context) {
	names := h.soundFiles()
	if len(names) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sound files available"})
		return
	}

	name := names[rand.Intn(len(names))]
	contentType := "application/octet-stream"
	switch filepath.Ext(name) {
	case ".wav":
		contentType = "audio/wav"
	case ".mp3":
		contentType = "audio/mpeg"
	}
	c.Header("Content-Type", contentType)
	c.File(filepath.Join(h.Dir, name))
}
