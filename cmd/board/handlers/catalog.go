package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwagner82/parrotbox/pkg/oddcast"
)

// CatalogHandler exposes the remote voice catalog over the board API. The
// catalog is fetched on every request so the board always reflects the
// current remote document.
type CatalogHandler struct {
	Client *oddcast.Client
}

func (h *CatalogHandler) Languages(c *gin.Context) {
	catalog, err := h.Client.LoadCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load voice catalog"})
		return
	}
	languages := catalog.Languages()
	if languages == nil {
		languages = []oddcast.LanguageSummary{}
	}
	c.JSON(http.StatusOK, languages)
}

func (h *CatalogHandler) Voices(c *gin.Context) {
	language := c.Query("language")
	if language == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language query parameter required"})
		return
	}

	catalog, err := h.Client.LoadCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load voice catalog"})
		return
	}
	voices := catalog.Voices(language)
	if voices == nil {
		voices = []oddcast.VoiceSummary{}
	}
	c.JSON(http.StatusOK, voices)
}

func (h *CatalogHandler) Voice(c *gin.Context) {
	name := c.Param("name")
	catalog, err := h.Client.LoadCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load voice catalog"})
		return
	}
	voice, ok := catalog.FindVoice(name)
	if !ok {
		slog.Info("voice lookup missed", "voice", name)
		c.JSON(http.StatusNotFound, gin.H{"error": "voice not found"})
		return
	}
	c.JSON(http.StatusOK, voice)
}
