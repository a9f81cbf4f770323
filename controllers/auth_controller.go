package controllers

import (
	"errors"
	"net/http"

	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type RequestOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

func (h *AuthController) RequestOTP(c *gin.Context) {
	var input RequestOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.RequestOTP(input.Email); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to send sign-in code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sign-in code sent"})
}

func (h *AuthController) VerifyOTP(c *gin.Context) {
	var input VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.Svc.VerifyOTP(input.Email, input.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOTP) {
			respondError(c, http.StatusUnauthorized, "invalid or expired code")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthController) Me(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Svc.UserByID(userID)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondData(c, http.StatusOK, gin.H{"user": user})
}
