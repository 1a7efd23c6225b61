package repository

import (
	"prefect_board/internal/models"
	"prefect_board/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Submit(rating *models.Rating) error
	FindByTargetID(targetID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *storage.PostgresDB
}

func NewRatingRepository(db *storage.PostgresDB) RatingRepository {
	return &ratingRepository{db: db}
}

// Submit 寫入一筆評分並重新計算對象的平均分和總筆數
// 整個過程在同一個交易內進行，並對對象的個人資料行加鎖，
// 讓同時提交的評分依序處理，避免平均值互相覆蓋。
func (r *ratingRepository) Submit(rating *models.Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		var profile models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", rating.TargetID).
			First(&profile).Error; err != nil {
			return err
		}

		// 重新讀取該對象目前所有的評分來計算平均
		var agg struct {
			Count int64
			Sum   float64
		}
		if err := tx.Model(&models.Rating{}).
			Select("COUNT(*) AS count, COALESCE(SUM(stars), 0) AS sum").
			Where("target_id = ?", rating.TargetID).
			Scan(&agg).Error; err != nil {
			return err
		}

		average := 0.0
		if agg.Count > 0 {
			average = agg.Sum / float64(agg.Count)
		}

		return tx.Model(&profile).Updates(map[string]interface{}{
			"average_rating": average,
			"total_ratings":  agg.Count,
		}).Error
	})
}

func (r *ratingRepository) FindByTargetID(targetID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("target_id = ?", targetID).Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}
