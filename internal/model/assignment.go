package model

import "time"

// Assignment grants a user permission to clock in to a project.
// The composite primary key makes duplicate grants impossible.
type Assignment struct {
	UserID     string    `gorm:"primaryKey;type:varchar(32)" json:"user_id"`
	ProjectID  uint      `gorm:"primaryKey" json:"project_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	User    *User    `gorm:"foreignKey:UserID;references:DiscordID" json:"user,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Assignment) TableName() string { return "user_projects" }
