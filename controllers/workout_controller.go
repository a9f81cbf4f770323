package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

type CreateWorkoutInput struct {
	Name        string     `json:"name" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	DurationMin int        `json:"durationMin" binding:"required,min=1"`
	Notes       string     `json:"notes"`
	LoggedAt    *time.Time `json:"loggedAt"`
}

func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter, ok := logFilterFromQuery(c)
	if !ok {
		return
	}

	workouts, err := h.Svc.List(userID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, workouts)
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout := models.Workout{
		UserID:      userID,
		Name:        input.Name,
		Type:        input.Type,
		DurationMin: input.DurationMin,
		Notes:       input.Notes,
	}
	if input.LoggedAt != nil {
		workout.LoggedAt = *input.LoggedAt
	}

	if err := h.Svc.Create(&workout); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, workout)
}

func (h *WorkoutController) Delete(c *gin.Context) {
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
