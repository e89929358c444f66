package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/service"
)

type TechniqueHandler interface {
	GetAll(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Untrash(c *gin.Context)
	Trash(c *gin.Context)
	Delete(c *gin.Context)
}

type techniqueHandler struct {
	techniques *service.TechniqueService
	errs       *httperr.Writer
	logger     *zap.Logger
}

func NewTechniqueHandler(techniques *service.TechniqueService, errs *httperr.Writer, logger *zap.Logger) TechniqueHandler {
	return &techniqueHandler{techniques: techniques, errs: errs, logger: logger}
}

// GetAll handles GET /techniques
func (h *techniqueHandler) GetAll(c *gin.Context) {
	techniques, err := h.techniques.List()
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": techniques})
}

// Get handles GET /techniques/:id
func (h *techniqueHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	technique, err := h.techniques.Get(id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": technique})
}

type createTechniqueRequest struct {
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	Group          string `json:"group"`
	SubGroup       string `json:"subGroup"`
	Family         string `json:"family"`
	KyuGoKyoNoWaza string `json:"kyuGoKyoNoWaza"`
	GoKyoNoWaza    string `json:"goKyoNoWaza"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	YoutubeID      string `json:"youtubeId"`
}

// Create handles PUT /techniques
func (h *techniqueHandler) Create(c *gin.Context) {
	var req createTechniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Write(c, failure.ErrMissingData)
		return
	}

	technique := &models.Technique{
		UserID:         req.UserID,
		Name:           req.Name,
		Group:          req.Group,
		SubGroup:       req.SubGroup,
		Family:         req.Family,
		KyuGoKyoNoWaza: req.KyuGoKyoNoWaza,
		GoKyoNoWaza:    req.GoKyoNoWaza,
		Description:    req.Description,
		Image:          req.Image,
		YoutubeID:      req.YoutubeID,
	}
	if err := h.techniques.Create(technique); err != nil {
		h.errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Technique Created", "data": technique})
}

// Update handles PATCH /techniques/:id
func (h *techniqueHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	var req service.TechniqueUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Write(c, failure.ErrMissingData)
		return
	}

	if err := h.techniques.Update(id, req); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technique Updated"})
}

// Untrash handles POST /techniques/untrash/:id
func (h *techniqueHandler) Untrash(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.techniques.Untrash(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Trash handles DELETE /techniques/trash/:id
func (h *techniqueHandler) Trash(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.techniques.Trash(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /techniques/:id, removing the row for good.
func (h *techniqueHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.techniques.Purge(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
