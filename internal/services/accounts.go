package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/internal/models"
	"github.com/diewo77/go-social/sanitize"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService { return &AccountService{DB: db} }

// Register creates a user with a hashed password. The existence check and
// the insert run in one transaction, and the unique index on username backs
// it up, so two concurrent registrations cannot both succeed.
func (s *AccountService) Register(f RegisterInput) (*models.User, error) {
	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:  f.Username,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Password:  hash,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", f.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
}

// Authenticate verifies a username/password pair.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return &user, nil
}

// FindByUsername returns the user or ErrUnknownUser.
func (s *AccountService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string
}

// UpdateProfile writes the six profile fields, sanitized. Username and
// password are never touched here.
func (s *AccountService) UpdateProfile(username string, p ProfileUpdate) error {
	updates := map[string]any{
		"education":   sanitize.Clean(p.Education),
		"employment":  sanitize.Clean(p.Employment),
		"music":       sanitize.Clean(p.Music),
		"movie":       sanitize.Clean(p.Movie),
		"nationality": sanitize.Clean(p.Nationality),
		"birthday":    sanitize.Clean(p.Birthday),
	}
	res := s.DB.Model(&models.User{}).Where("username = ?", username).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUnknownUser
	}
	return nil
}
