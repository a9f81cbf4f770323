package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type CalorieController struct {
	Svc *services.CalorieService
}

func NewCalorieController(svc *services.CalorieService) *CalorieController {
	return &CalorieController{Svc: svc}
}

type CreateCalorieInput struct {
	FoodName string     `json:"foodName" binding:"required"`
	Calories *int       `json:"calories" binding:"required,gte=0"`
	Meal     string     `json:"meal" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	Notes    string     `json:"notes"`
	LoggedAt *time.Time `json:"loggedAt"`
}

func (h *CalorieController) List(c *gin.Context) {
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

func (h *CalorieController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateCalorieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	log := models.CalorieLog{
		UserID:   userID,
		FoodName: input.FoodName,
		Calories: *input.Calories,
		Meal:     input.Meal,
		Notes:    input.Notes,
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

func (h *CalorieController) Delete(c *gin.Context) {
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
