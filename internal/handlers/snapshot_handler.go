package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "artha/internal/errors"
	"artha/internal/models"
	"artha/internal/services"
)

// SnapshotHandler serves whole-state export and import.
type SnapshotHandler struct {
	snapshots services.SnapshotServicer
}

// NewSnapshotHandler creates a SnapshotHandler.
func NewSnapshotHandler(snapshots services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Export godoc
// @Summary Export the whole ledger as a snapshot
// @Tags snapshot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AppState
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	state, err := h.snapshots.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Import godoc
// @Summary Replace the ledger with a snapshot
// @Description Whole-state replace, last writer wins. A version mismatch or a single invalid entry rejects the import.
// @Tags snapshot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AppState true "Snapshot"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /snapshot [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var state models.AppState
	if err := c.ShouldBindJSON(&state); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.snapshots.Import(userID, &state); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
