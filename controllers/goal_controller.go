package controllers

import (
	"errors"
	"net/http"

	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

func (h *GoalController) GetGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goal, err := h.Svc.GetOrCreate(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, goal)
}

type UpdateGoalInput struct {
	WeeklyWorkouts     *int     `json:"weeklyWorkouts"`
	WeeklyStudyHours   *float64 `json:"weeklyStudyHours"`
	DailySleepHours    *float64 `json:"dailySleepHours"`
	DailyCalorieTarget *int     `json:"dailyCalorieTarget"`
}

func (h *GoalController) UpdateGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.Svc.Update(userID, services.GoalUpdate{
		WeeklyWorkouts:     input.WeeklyWorkouts,
		WeeklyStudyHours:   input.WeeklyStudyHours,
		DailySleepHours:    input.DailySleepHours,
		DailyCalorieTarget: input.DailyCalorieTarget,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			respondError(c, http.StatusBadRequest, verr.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, goal)
}
