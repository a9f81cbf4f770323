package controllers

import (
	"net/http"
	"time"

	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (h *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshot, err := h.Svc.Snapshot(userID, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, snapshot)
}
