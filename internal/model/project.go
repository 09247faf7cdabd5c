package model

import "time"

type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);uniqueIndex:uk_project_name;not null" json:"name"`
	CreatedBy string    `gorm:"type:varchar(32);not null;index:idx_created_by" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	Creator *User `gorm:"foreignKey:CreatedBy;references:DiscordID" json:"creator,omitempty"`
}

func (Project) TableName() string { return "projects" }
