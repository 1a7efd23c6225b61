package models

import (
	"gorm.io/gorm"
)

// Profile 表示用戶的個人資料，以帳號 ID 為唯一鍵
// 首次登入時若不存在會自動建立一份最小的預設資料
type Profile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Name          string  `gorm:"not null" json:"name"`
	Role          Role    `gorm:"type:varchar(50);not null" json:"role"`
	PhotoURL      string  `json:"photo_url,omitempty"`
	AverageRating float64 `json:"average_rating"` // 收到評分的平均值，由評分提交時重新計算
	TotalRatings  int     `json:"total_ratings"`  // 收到評分的總筆數
	IsComplete    bool    `json:"is_complete"`    // 自動建立的資料為 false，用戶必須完成設置
}

// RoleTitle 回傳角色的顯示名稱，方便前端直接呈現
func (p *Profile) RoleTitle() string {
	return p.Role.Title()
}
