package handlers

import "github.com/gin-gonic/gin"

// currentUserID 從上下文中取出認證中間件設置的用戶 ID
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}
