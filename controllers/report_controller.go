package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

func (h *ReportController) GetWeeklyReport(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Absent, unparsable or negative offsets fall back to the current week.
	weekOffset := 0
	if v := c.Query("weekOffset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			weekOffset = n
		}
	}

	report, err := h.Svc.Weekly(c.Request.Context(), userID, weekOffset, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, report)
}
