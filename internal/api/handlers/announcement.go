package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/service"
)

// AnnouncementHandler 處理與公告相關的請求
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	userService         *service.UserService
}

// NewAnnouncementHandler 創建一個新的 AnnouncementHandler 實例
func NewAnnouncementHandler(announcementService *service.AnnouncementService, userService *service.UserService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		userService:         userService,
	}
}

// CreateAnnouncementInput 定義發布公告請求的結構
type CreateAnnouncementInput struct {
	Title   string `json:"title" binding:"required"`
	Summary string `json:"summary" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

// List 處理獲取公告列表的請求，過期的公告不會出現在結果中
func (h *AnnouncementHandler) List(c *gin.Context) {
	views, err := h.announcementService.List(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入公告"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcements": views})
}

// Create 處理發布公告的請求
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	announcement, err := h.announcementService.Create(creator, input.Title, input.Summary, input.Date, input.Time)
	if err != nil {
		if errors.Is(err, service.ErrNotAnnouncer) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "發布公告失敗"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// Delete 處理刪除公告的請求
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	actor, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	err = h.announcementService.Delete(actor, c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "公告刪除成功"})
	case errors.Is(err, service.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAnnouncer), errors.Is(err, service.ErrNotCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除公告失敗"})
	}
}
