package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parkguard-dev/parkguard/internal/alerts"
	"github.com/parkguard-dev/parkguard/internal/models"
)

type CreateAlertRequest struct {
	Plate    string `json:"plate"`
	Property string `json:"property"`
	Zone     string `json:"zone"`
	Reason   string `json:"reason"`
	Urgency  string `json:"urgency"`
	Note     string `json:"note"`
}

type UpdateAlertRequest struct {
	Status        *string    `json:"status"`
	OwnerResponse *string    `json:"ownerResponse"`
	RespondedAt   *time.Time `json:"respondedAt"`
	Revision      *uint      `json:"revision"`
}

type AlertHandler struct {
	Service *alerts.Service
}

func NewAlertHandler(service *alerts.Service) *AlertHandler {
	return &AlertHandler{Service: service}
}

func (h *AlertHandler) CreateAlert(ctx *gin.Context) {
	var req CreateAlertRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	alert, err := h.Service.Create(alerts.CreateInput{
		Plate:    req.Plate,
		Property: req.Property,
		Zone:     req.Zone,
		Reason:   req.Reason,
		Urgency:  req.Urgency,
		Note:     req.Note,
	})

	if err != nil {
		respondAlertError(ctx, err)
		return
	}

	BroadcastRefresh()
	ctx.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) ListAlerts(ctx *gin.Context) {
	list, err := h.Service.List()

	if err != nil {
		respondAlertError(ctx, err)
		return
	}

	// Keep the body an array even when the table is empty.
	if list == nil {
		list = []models.Alert{}
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *AlertHandler) UpdateAlert(ctx *gin.Context) {
	id, err := parseAlertID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert ID"})
		return
	}

	var req UpdateAlertRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	alert, err := h.Service.Update(id, alerts.UpdatePatch{
		Status:        req.Status,
		OwnerResponse: req.OwnerResponse,
		RespondedAt:   req.RespondedAt,
		Revision:      req.Revision,
	})

	if err != nil {
		respondAlertError(ctx, err)
		return
	}

	BroadcastRefresh()
	ctx.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) DeleteAlert(ctx *gin.Context) {
	id, err := parseAlertID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert ID"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondAlertError(ctx, err)
		return
	}

	BroadcastRefresh()
	ctx.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

func parseAlertID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

func respondAlertError(ctx *gin.Context, err error) {
	var validationErr *alerts.ValidationError
	var notFoundErr *alerts.NotFoundError
	var conflictErr *alerts.ConflictError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
