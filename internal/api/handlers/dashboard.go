package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/models"
	"prefect_board/internal/service"
)

// DashboardHandler 處理首頁摘要和靜態資訊頁的請求
type DashboardHandler struct {
	userService         *service.UserService
	announcementService *service.AnnouncementService
}

// NewDashboardHandler 創建一個新的 DashboardHandler 實例
func NewDashboardHandler(userService *service.UserService, announcementService *service.AnnouncementService) *DashboardHandler {
	return &DashboardHandler{
		userService:         userService,
		announcementService: announcementService,
	}
}

// Home 處理首頁摘要的請求：自己的評分統計加上最近五則公告
func (h *DashboardHandler) Home(c *gin.Context) {
	profile, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	now := time.Now()
	recent, err := h.announcementService.Recent(now, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入公告"})
		return
	}

	// 看板健康度：即將到期的數量和距離上一則公告的時間
	expiringSoon := 0
	for _, a := range recent {
		if a.ExpiringSoon {
			expiringSoon++
		}
	}
	hoursSinceLast := -1
	if len(recent) > 0 {
		hoursSinceLast = int(now.Sub(recent[0].CreatedAt).Hours())
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":              profile,
		"average_rating":       profile.AverageRating,
		"total_ratings":        profile.TotalRatings,
		"recent_announcements": recent,
		"expiring_soon_count":  expiringSoon,
		"hours_since_last":     hoursSinceLast,
	})
}

// councilPosition 值日與理事會資訊頁的靜態條目
type councilPosition struct {
	Role       models.Role `json:"role"`
	Title      string      `json:"title"`
	Precedence int         `json:"precedence"`
}

// DutyCouncil 處理值日與理事會資訊頁的請求，內容是固定的職位表
func (h *DashboardHandler) DutyCouncil(c *gin.Context) {
	roles := models.CouncilRoles()
	positions := make([]councilPosition, 0, len(roles))
	for _, role := range roles {
		positions = append(positions, councilPosition{
			Role:       role,
			Title:      role.Title(),
			Precedence: role.Precedence(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"council_positions": positions})
}
