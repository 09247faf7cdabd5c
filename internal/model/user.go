package model

import "time"

// User is a Discord identity known to the bot. Rows are created lazily the
// first time a user invokes any command and are never deleted.
type User struct {
	DiscordID string    `gorm:"primaryKey;type:varchar(32)" json:"discord_id"`
	Username  string    `gorm:"type:varchar(64);not null" json:"username"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
