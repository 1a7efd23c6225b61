package repository

import (
	"prefect_board/internal/models"
	"prefect_board/internal/storage"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID uint) (*models.Profile, error)
	Update(profile *models.Profile) error
	FindByRoles(roles []models.Role) ([]models.Profile, error)
}

type profileRepository struct {
	db *storage.PostgresDB
}

func NewProfileRepository(db *storage.PostgresDB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// FindByRoles 查詢指定角色的所有個人資料，名冊與評分對象列表用
func (r *profileRepository) FindByRoles(roles []models.Role) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("role IN ?", roles).Find(&profiles).Error
	return profiles, err
}
