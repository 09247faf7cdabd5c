package model

import "time"

// TimeEntry is one clock-in/clock-out pair. A nil ClockOut means the entry is
// open, i.e. the user is currently clocked in.
type TimeEntry struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"type:varchar(32);not null;index:idx_entries_open,priority:1" json:"user_id"`
	ProjectID uint       `gorm:"not null;index:idx_entries_project" json:"project_id"`
	ClockIn   time.Time  `gorm:"not null;index:idx_entries_clock_in" json:"clock_in"`
	ClockOut  *time.Time `gorm:"index:idx_entries_open,priority:2" json:"clock_out"`
	Note      *string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time  `json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

func (TimeEntry) TableName() string { return "time_entries" }

// IsOpen reports whether the entry has not been clocked out yet.
func (e *TimeEntry) IsOpen() bool { return e.ClockOut == nil }

// Duration is the elapsed time of a closed entry. Open entries report zero.
func (e *TimeEntry) Duration() time.Duration {
	if e.ClockOut == nil {
		return 0
	}
	return e.ClockOut.Sub(e.ClockIn)
}

// ProjectName returns the joined project name when the association was loaded.
func (e *TimeEntry) ProjectName() string {
	if e.Project != nil {
		return e.Project.Name
	}
	return ""
}
