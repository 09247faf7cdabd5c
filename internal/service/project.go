package service

import (
	"errors"
	"fmt"

	"github.com/Benjafo/TimeClock/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// GetByName returns the project with that exact name, or nil when no such
// project exists.
func (s *ProjectService) GetByName(name string) (*model.Project, error) {
	var project model.Project
	if err := s.db.Where("name = ?", name).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) List() ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Order("name").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts a project and assigns the creator to it. Both writes happen
// in one transaction so a failed insert never leaves a dangling assignment.
func (s *ProjectService) Create(name, creatorID string) (*model.Project, error) {
	var count int64
	if err := s.db.Model(&model.Project{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("40005:project name already exists")
	}

	project := &model.Project{Name: name, CreatedBy: creatorID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Create(&model.Assignment{UserID: creatorID, ProjectID: project.ID}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// Rename updates the project name in place. Entries and assignments reference
// the surrogate id, so they are unaffected.
func (s *ProjectService) Rename(oldName, newName string) error {
	result := s.db.Model(&model.Project{}).Where("name = ?", oldName).Update("name", newName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:project not found")
	}
	return nil
}

// Delete removes the project together with all of its time entries and
// assignments.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("40401:project not found")
		}
		return nil
	})
}

func (s *ProjectService) IsAssigned(userID string, projectID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&model.Assignment{}).Where("user_id = ? AND project_id = ?", userID, projectID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Assign grants the user access to the project. Assigning an already assigned
// pair is a no-op.
func (s *ProjectService) Assign(userID string, projectID uint) error {
	assigned, err := s.IsAssigned(userID, projectID)
	if err != nil {
		return err
	}
	if assigned {
		return nil
	}
	return s.db.Create(&model.Assignment{UserID: userID, ProjectID: projectID}).Error
}

func (s *ProjectService) Unassign(userID string, projectID uint) error {
	result := s.db.Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&model.Assignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:user is not assigned to this project")
	}
	return nil
}
