package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Benjafo/TimeClock/internal/model"
	"gorm.io/gorm"
)

type TimeEntryService struct {
	db *gorm.DB
}

func NewTimeEntryService(db *gorm.DB) *TimeEntryService {
	return &TimeEntryService{db: db}
}

// Open returns the user's open entry across all projects, or nil when the
// user is not clocked in anywhere.
func (s *TimeEntryService) Open(userID string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := s.db.Where("user_id = ? AND clock_out IS NULL", userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup open entry: %w", err)
	}
	return &entry, nil
}

// OpenForProject returns the user's open entry on one specific project, or nil.
func (s *TimeEntryService) OpenForProject(userID string, projectID uint) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := s.db.Where("user_id = ? AND project_id = ? AND clock_out IS NULL", userID, projectID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup open entry: %w", err)
	}
	return &entry, nil
}

// ClockIn opens a new entry stamped with the current UTC time.
func (s *TimeEntryService) ClockIn(userID string, projectID uint) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{
		UserID:    userID,
		ProjectID: projectID,
		ClockIn:   time.Now().UTC(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("clock in: %w", err)
	}
	return entry, nil
}

// ClockOut stamps the entry with the current UTC time and returns it. The
// caller must already have verified the entry is open.
func (s *TimeEntryService) ClockOut(entryID uint) (time.Time, error) {
	now := time.Now().UTC()
	result := s.db.Model(&model.TimeEntry{}).Where("id = ?", entryID).Update("clock_out", now)
	if result.Error != nil {
		return time.Time{}, fmt.Errorf("clock out: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return time.Time{}, fmt.Errorf("40401:time entry not found")
	}
	return now, nil
}

// List returns the user's entries newest first, optionally filtered by
// project, with the project association loaded, capped at limit.
func (s *TimeEntryService) List(userID string, projectID *uint, limit int) ([]model.TimeEntry, error) {
	query := s.db.Where("user_id = ?", userID)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var entries []model.TimeEntry
	if err := query.Preload("Project").Order("clock_in DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns one entry with its project loaded, or nil when it does not
// exist (e.g. it was cascaded away by a project deletion).
func (s *TimeEntryService) Get(id uint) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	if err := s.db.Preload("Project").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup entry: %w", err)
	}
	return &entry, nil
}

// Update overwrites both timestamps. A nil clockOut reopens the entry.
func (s *TimeEntryService) Update(id uint, clockIn time.Time, clockOut *time.Time) error {
	result := s.db.Model(&model.TimeEntry{}).Where("id = ?", id).Updates(map[string]interface{}{
		"clock_in":  clockIn,
		"clock_out": clockOut,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:time entry not found")
	}
	return nil
}

func (s *TimeEntryService) Delete(id uint) error {
	result := s.db.Delete(&model.TimeEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:time entry not found")
	}
	return nil
}

// TotalDuration sums the durations of the closed entries and splits the total
// into whole hours and leftover minutes. Open entries are excluded from the
// sum, not counted as zero-length.
func TotalDuration(entries []model.TimeEntry) (hours, minutes int) {
	var total time.Duration
	for _, e := range entries {
		if e.ClockOut != nil {
			total += e.ClockOut.Sub(e.ClockIn)
		}
	}
	totalMinutes := int(total.Minutes())
	return totalMinutes / 60, totalMinutes % 60
}
