package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a player in the XO game.
//
// MaxWinsStreak is the highest score value the player has ever reached at the
// moment an increment completed. It never decreases; decrements and resets
// leave it untouched.
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null;index"`
	Email         string    `json:"email" gorm:"size:255;not null;index"`
	GoogleID      string    `json:"googleId" gorm:"column:google_id;uniqueIndex;size:255;not null"`
	Picture       string    `json:"picture,omitempty" gorm:"size:512"`
	Scores        int       `json:"scores" gorm:"not null;default:0;index"`
	MaxWinsStreak int       `json:"maxWinsStreak" gorm:"not null;default:0;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserScore is the leaderboard projection ranked by current score.
type UserScore struct {
	Name   string `json:"name"`
	Scores int    `json:"scores"`
}

// UserMaxWinsStreak is the leaderboard projection ranked by peak score.
type UserMaxWinsStreak struct {
	Name          string `json:"name"`
	MaxWinsStreak int    `json:"maxWinsStreak"`
}
