package services

import (
	"errors"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"
	"github.com/Mahi2103/UrlShortnerProject/pkg/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewUserService(db *gorm.DB, auditService *AuditService) *UserService {
	return &UserService{db: db, auditService: auditService}
}

// Register creates a user with a hashed password. The returned record never
// carries the hash out of this package boundary (json-hidden on the model).
func (s *UserService) Register(name, email, password, ipAddress string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		UserName:     name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.auditService.LogAction(&user.ID, "REGISTER", user.Email, nil, ipAddress)
	return &user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password
// produce the same error so callers cannot enumerate accounts.
func (s *UserService) Authenticate(email, password, ipAddress string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, ipAddress)
	return &user, nil
}
