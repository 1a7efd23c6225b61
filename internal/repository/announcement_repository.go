package repository

import (
	"prefect_board/internal/models"
	"prefect_board/internal/storage"
)

type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	FindByID(id string) (*models.Announcement, error)
	FindAll() ([]models.Announcement, error)
	Delete(id string) error
}

type announcementRepository struct {
	db *storage.PostgresDB
}

func NewAnnouncementRepository(db *storage.PostgresDB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *announcementRepository) FindByID(id string) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.Where("id = ?", id).First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// FindAll 查詢所有公告，新的在前
func (r *announcementRepository) FindAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *announcementRepository) Delete(id string) error {
	return r.db.Delete(&models.Announcement{}, "id = ?", id).Error
}
