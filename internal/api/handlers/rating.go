package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/service"
)

// RatingHandler 處理與評分相關的請求
type RatingHandler struct {
	ratingService *service.RatingService
	userService   *service.UserService
}

// NewRatingHandler 創建一個新的 RatingHandler 實例
func NewRatingHandler(ratingService *service.RatingService, userService *service.UserService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		userService:   userService,
	}
}

// SubmitRatingInput 定義提交評分請求的結構
type SubmitRatingInput struct {
	TargetID uint   `json:"target_id" binding:"required"`
	Stars    int    `json:"stars" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// Targets 處理獲取評分對象列表的請求
func (h *RatingHandler) Targets(c *gin.Context) {
	rater, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	targets, err := h.ratingService.Targets(rater)
	if err != nil {
		if errors.Is(err, service.ErrCannotRate) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入評分對象"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"targets": targets})
}

// Submit 處理提交評分的請求
func (h *RatingHandler) Submit(c *gin.Context) {
	var input SubmitRatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rater, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	err = h.ratingService.Submit(rater, input.TargetID, input.Stars, input.Feedback)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "評分提交成功"})
	case errors.Is(err, service.ErrCannotRate), errors.Is(err, service.ErrInvalidTarget):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTargetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStars):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "提交評分失敗"})
	}
}
