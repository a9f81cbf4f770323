package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message}})
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func idFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

// logFilterFromQuery reads the optional from/to RFC3339 query bounds shared
// by every list endpoint.
func logFilterFromQuery(c *gin.Context) (services.LogFilter, bool) {
	var f services.LogFilter
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid 'from' timestamp, want RFC3339")
			return f, false
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid 'to' timestamp, want RFC3339")
			return f, false
		}
		f.To = &t
	}
	return f, true
}
