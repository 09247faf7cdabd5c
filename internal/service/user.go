package service

import (
	"errors"
	"fmt"

	"github.com/Benjafo/TimeClock/internal/model"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate looks up a user by Discord id, inserting the row on first
// contact. Calling it twice with the same id returns the same record.
func (s *UserService) GetOrCreate(discordID, username string) (*model.User, error) {
	var user model.User
	err := s.db.Where("discord_id = ?", discordID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user = model.User{DiscordID: discordID, Username: username}
	if err := s.db.Create(&user).Error; err != nil {
		// Lost a race against a concurrent first interaction; the row exists now.
		if ferr := s.db.Where("discord_id = ?", discordID).First(&user).Error; ferr == nil {
			return &user, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Get returns the user, or nil when the id is unknown.
func (s *UserService) Get(discordID string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &user, nil
}

// IsAdmin reports whether the user carries the admin flag. Unknown users are
// not admins.
func (s *UserService) IsAdmin(discordID string) (bool, error) {
	var user model.User
	if err := s.db.Select("is_admin").Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup admin flag: %w", err)
	}
	return user.IsAdmin, nil
}

func (s *UserService) SetAdmin(discordID string, isAdmin bool) error {
	result := s.db.Model(&model.User{}).Where("discord_id = ?", discordID).Update("is_admin", isAdmin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:user not found")
	}
	return nil
}

func (s *UserService) List() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
