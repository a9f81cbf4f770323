package services

import (
	"errors"
	"strings"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
	"github.com/JaiyeofGod/Dualforce/utils"

	"gorm.io/gorm"
)

var ErrInvalidOTP = errors.New("invalid or expired code")

const otpTTL = 10 * time.Minute

// Mailer delivers sign-in codes. Satisfied by utils.SESMailer.
type Mailer interface {
	SendOTPEmail(to string, code string) error
}

type AuthService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewAuthService(db *gorm.DB, mailer Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

// RequestOTP creates the account on first contact, then mails a short-lived
// sign-in code.
func (s *AuthService) RequestOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Email: email}
		if err := s.db.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	code := utils.GenerateOTPCode()
	user.OTPCode = code
	user.OTPExpiresAt = time.Now().Add(otpTTL)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return s.mailer.SendOTPEmail(user.Email, code)
}

// VerifyOTP trades a valid code for a bearer token and invalidates the code.
func (s *AuthService) VerifyOTP(email, code string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidOTP
		}
		return "", err
	}

	if user.OTPCode == "" || user.OTPCode != code || time.Now().After(user.OTPExpiresAt) {
		return "", ErrInvalidOTP
	}

	user.OTPCode = ""
	user.OTPExpiresAt = time.Time{}
	if err := s.db.Save(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func (s *AuthService) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
