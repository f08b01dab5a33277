package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/config"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/importer"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/model"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/parser"
)

// Handler exposes the row parser to the operator review UI. It contains no
// parsing logic of its own.
type Handler struct {
	cfg         *config.AppConfig
	coordinator *importer.Coordinator
}

// NewHandler creates the API handler.
func NewHandler(cfg *config.AppConfig) *Handler {
	return &Handler{
		cfg:         cfg,
		coordinator: importer.NewCoordinator(),
	}
}

// RegisterRoutes registers the review endpoints.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.POST("/rows/parse", h.ParseRow)
	router.POST("/workbooks/parse", h.ParseWorkbook)
}

// GetStatus reports liveness.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ParseRowRequest is one row's raw cells plus the sport hint.
type ParseRowRequest struct {
	SportName string         `json:"sportName"`
	Cells     model.RowInput `json:"cells"`
}

// ParseRow parses a single row and returns the payload with its unresolved
// fields.
// POST /api/rows/parse
func (h *Handler) ParseRow(c *gin.Context) {
	var req ParseRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := parser.ParseRow(req.Cells, req.SportName)
	if err != nil {
		// Structural row errors are the caller's contract violation.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseWorkbook accepts an .xlsx upload and returns the batch report.
// POST /api/workbooks/parse
func (h *Handler) ParseWorkbook(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	uploaded := files[0]

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("bars_upload_%d_%s", time.Now().Unix(), filepath.Base(uploaded.Filename)))
	if err := c.SaveUploadedFile(uploaded, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempPath)

	f, err := os.Open(tempPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	report, err := h.coordinator.ParseReader(f, uploaded.Filename, importer.ImportOptions{
		SheetName:  c.DefaultPostForm("sheet", h.cfg.Sheet.Name),
		HeaderRows: h.cfg.Sheet.HeaderRows,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
