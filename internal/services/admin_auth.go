package services

import (
	"errors"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"gorm.io/gorm"
)

type AdminAuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAdminAuthService(db *gorm.DB, jwtSecret string) *AdminAuthService {
	return &AdminAuthService{db: db, jwtSecret: jwtSecret}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminAuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	Admin     models.Admin `json:"admin"`
}

// Login issues a 24h bearer token with type "admin". Inactive accounts
// and bad passwords produce the same error.
func (s *AdminAuthService) Login(req AdminLoginRequest) (*AdminAuthResponse, error) {
	var admin models.Admin
	if err := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&admin).Error; err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !admin.CheckPassword(req.Password) {
		return nil, errors.New("invalid email or password")
	}

	token, expiresAt, err := utils.GenerateAdminToken(admin.ID, admin.Email, admin.Role, s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AdminAuthResponse{Token: token, ExpiresAt: expiresAt.Unix(), Admin: admin}, nil
}
