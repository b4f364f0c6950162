package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"textlab/internal/config"
	"textlab/internal/dashboard"
	"textlab/internal/detect"
	"textlab/internal/ingest"
)

// Handler carries the pieces the routes need. The builder holds the shared
// sampler, so concurrent requests stay independent of each other.
type Handler struct {
	cfg     *config.Config
	builder dashboard.Builder
}

func NewHandler(cfg *config.Config, builder dashboard.Builder) *Handler {
	return &Handler{cfg: cfg, builder: builder}
}

type analyzeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
	Seed *int64 `json:"seed"`
}

// Index serves the demo page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"modes": detect.Modes(),
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnalyzeText runs the full pipeline on the posted text and returns the
// dashboard payload. Blank input is a client error, not a server one.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	builder := h.builder
	if req.Seed != nil {
		builder.Sampler = detect.NewSeededSampler(*req.Seed)
	}

	data := builder.Build(detect.Input{Text: req.Text, Mode: req.Mode}, nil)
	if data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input required"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// AnalyzeFile extracts text from an uploaded document and analyzes it.
func (h *Handler) AnalyzeFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > h.cfg.MaxUploadMB<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	text, err := ingest.Extract(file.Filename, f)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupported) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not extract text: " + err.Error()})
		return
	}

	data := h.builder.Build(detect.Input{Text: text, Mode: c.PostForm("mode")}, nil)
	if data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input required"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// Modes lists the analysis modes the UI can offer.
func (h *Handler) Modes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modes": detect.Modes()})
}

// Sample returns a passage with deliberately uneven sentence lengths, handy
// for demoing the charts without typing anything.
func (h *Handler) Sample(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"text": dashboard.DemoText})
}
