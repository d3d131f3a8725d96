package models

import "time"

// User & profile. Username is immutable after creation; only the six profile
// fields below the password are touched by the profile flow.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	Password  string `gorm:"not null"` // bcrypt hash, never the plaintext

	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string // free-text date, kept as entered

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName is the "First Last" form used by templates.
func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}
