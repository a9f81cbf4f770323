package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Svc *services.SleepService
}

func NewSleepController(svc *services.SleepService) *SleepController {
	return &SleepController{Svc: svc}
}

type CreateSleepInput struct {
	Hours    *float64   `json:"hours" binding:"required,gte=0,lte=24"`
	Quality  *int       `json:"quality" binding:"omitempty,min=1,max=5"`
	Notes    string     `json:"notes"`
	LoggedAt *time.Time `json:"loggedAt"`
}

func (h *SleepController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter, ok := logFilterFromQuery(c)
	if !ok {
		return
	}

	logs, err := h.Svc.List(userID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, logs)
}

func (h *SleepController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateSleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	log := models.SleepLog{
		UserID: userID,
		Hours:  *input.Hours,
		Notes:  input.Notes,
	}
	if input.Quality != nil {
		log.Quality = *input.Quality
	}
	if input.LoggedAt != nil {
		log.LoggedAt = *input.LoggedAt
	}

	if err := h.Svc.Create(&log); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, log)
}

func (h *SleepController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := idFromParam(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
