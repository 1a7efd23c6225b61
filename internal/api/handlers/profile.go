package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/models"
	"prefect_board/internal/service"
)

// ProfileHandler 處理個人資料和學生名冊相關的請求
type ProfileHandler struct {
	userService *service.UserService
}

// NewProfileHandler 創建一個新的 ProfileHandler 實例
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// UpdateProfileInput 定義更新個人資料請求的結構
type UpdateProfileInput struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,boardrole"`
	PhotoURL string `json:"photo_url"`
}

// Me 處理獲取自己個人資料的請求
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMe 處理更新自己個人資料的請求，更新後視為完成設置
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.userService.UpdateProfile(currentUserID(c), input.Name, models.Role(input.Role), input.PhotoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新個人資料失敗"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Roster 處理獲取完整學生名冊的請求，只有老師可以查看
func (h *ProfileHandler) Roster(c *gin.Context) {
	viewer, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	profiles, err := h.userService.Roster(viewer.Role)
	if err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "只有老師可以查看所有學生"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入學生名冊"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": profiles})
}
