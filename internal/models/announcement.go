package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 公告生命週期的時間界線
const (
	// AnnouncementTTL 公告發布後的可見時長，超過即視為過期
	AnnouncementTTL = 24 * time.Hour
	// ExpiryWarningWindow 到期前多久開始顯示即將到期的提示
	ExpiryWarningWindow = 6 * time.Hour
)

// Announcement 表示一則公告，發布後 24 小時內對所有登入用戶可見
type Announcement struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Summary     string    `gorm:"type:text" json:"summary"`
	Date        string    `json:"date"` // 顯示用的日期字串，由發布者填寫
	Time        string    `json:"time"` // 顯示用的時間字串，由發布者填寫
	CreatorID   uint      `gorm:"index;not null" json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate 在寫入資料庫前補上 UUID
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Age 回傳公告從發布到 now 為止經過的時間
func (a *Announcement) Age(now time.Time) time.Duration {
	return now.Sub(a.CreatedAt)
}

// Expired 判斷公告是否已過期
// 顯示過濾和定期清除共用這一條界線，剛好滿 24 小時即視為過期，
// 所以公告一旦從列表消失就不會再出現。
func (a *Announcement) Expired(now time.Time) bool {
	return a.Age(now) >= AnnouncementTTL
}

// ExpiringSoon 判斷公告是否已進入到期前的警示時段
func (a *Announcement) ExpiringSoon(now time.Time) bool {
	age := a.Age(now)
	return age >= AnnouncementTTL-ExpiryWarningWindow && age < AnnouncementTTL
}
