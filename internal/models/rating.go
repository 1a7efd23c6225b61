package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating 表示一筆 1 到 5 星的評分，建立後不會被修改或刪除
type Rating struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	RaterID   uint      `gorm:"index;not null" json:"rater_id"`
	TargetID  uint      `gorm:"index;not null" json:"target_id"` // 被評分者的帳號 ID
	Stars     int       `gorm:"not null" json:"stars"`
	Feedback  string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate 在寫入資料庫前補上 UUID
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
