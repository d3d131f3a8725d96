package models

import "time"

// Friend is a directed edge: UserID added FriendID. It does not imply the
// reverse edge exists, so feed queries must look in both directions.
// The composite unique index makes duplicate inserts fail at the storage
// layer instead of racing an application-level pre-check.
type Friend struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_friend_edge"`
	FriendID  uint `gorm:"not null;uniqueIndex:idx_friend_edge"`
	User      User `gorm:"foreignKey:UserID"`
	Friend    User `gorm:"foreignKey:FriendID"`
	CreatedAt time.Time
}
