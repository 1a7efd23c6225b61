package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/models"
	"prefect_board/internal/service"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,boardrole"`
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 處理用戶註冊
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	// 解析並驗證請求體，弱密碼和無效的電子郵件在這一步被擋下
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, profile, err := h.userService.Register(input.Email, input.Password, input.Name, models.Role(input.Role))
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建帳號失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "帳號註冊成功",
		"token":   token,
		"profile": profile,
	})
}

// Login 處理用戶登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, profile, err := h.userService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登入失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"profile": profile,
		"state":   h.userService.SessionState(profile),
	})
}

// Session 回報目前的頂層狀態，客戶端用它決定顯示哪個畫面
// 沒有個人資料的帳號會在這裡拿到自動建立的預設資料
func (h *AuthHandler) Session(c *gin.Context) {
	userID := currentUserID(c)

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法載入個人資料"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   h.userService.SessionState(profile),
		"profile": profile,
	})
}
