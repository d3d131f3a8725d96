package models

import "time"

// Post is immutable once created and listed newest-first.
type Post struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"not null;index"`
	User    User   `gorm:"foreignKey:UserID"`
	Content string
	Image   string // filename under the uploads directory, empty when none
	// CommentCount is not persisted; computed at query time
	CommentCount int64 `gorm:"-"`
	CreatedAt    time.Time
}

type Comment struct {
	ID        uint `gorm:"primaryKey"`
	PostID    uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null"`
	User      User `gorm:"foreignKey:UserID"`
	Body      string
	CreatedAt time.Time
}
