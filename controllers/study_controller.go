package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type StudyController struct {
	Svc *services.StudyService
}

func NewStudyController(svc *services.StudyService) *StudyController {
	return &StudyController{Svc: svc}
}

type CreateStudyInput struct {
	Subject     string     `json:"subject" binding:"required"`
	DurationMin int        `json:"durationMin" binding:"required,min=1"`
	Notes       string     `json:"notes"`
	LoggedAt    *time.Time `json:"loggedAt"`
}

func (h *StudyController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter, ok := logFilterFromQuery(c)
	if !ok {
		return
	}

	sessions, err := h.Svc.List(userID, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, sessions)
}

func (h *StudyController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateStudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	session := models.StudySession{
		UserID:      userID,
		Subject:     input.Subject,
		DurationMin: input.DurationMin,
		Notes:       input.Notes,
	}
	if input.LoggedAt != nil {
		session.LoggedAt = *input.LoggedAt
	}

	if err := h.Svc.Create(&session); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, session)
}

func (h *StudyController) Delete(c *gin.Context) {
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
