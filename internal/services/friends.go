package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/internal/models"
)

type FriendService struct {
	DB *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService { return &FriendService{DB: db} }

// Add records the directed edge user -> friendUsername. Self-edges and
// duplicates are rejected; the check and insert run in one transaction and
// the composite unique index closes the remaining race window.
func (s *FriendService) Add(user *models.User, friendUsername string) (*models.User, error) {
	var friend models.User
	if err := s.DB.Where("username = ?", friendUsername).First(&friend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if friend.ID == user.ID {
		return nil, ErrSelfFriend
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Friend{}).
			Where("user_id = ? AND friend_id = ?", user.ID, friend.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyFriends
		}
		return tx.Create(&models.Friend{UserID: user.ID, FriendID: friend.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyFriends
	}
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

// ListFor returns the edges where the user is the source, excluding any
// stale self-edge, with the friend rows loaded.
func (s *FriendService) ListFor(user *models.User) ([]models.Friend, error) {
	var edges []models.Friend
	if err := s.DB.Preload("Friend").
		Where("user_id = ? AND friend_id <> ?", user.ID, user.ID).
		Order("created_at ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}
