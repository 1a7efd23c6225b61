package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prefect_board/internal/api/handlers"
	"prefect_board/internal/middleware"
	"prefect_board/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	RegisterValidations()

	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	profileHandler := handlers.NewProfileHandler(services.User)
	announcementHandler := handlers.NewAnnouncementHandler(services.Announcement, services.User)
	ratingHandler := handlers.NewRatingHandler(services.Rating, services.User)
	dashboardHandler := handlers.NewDashboardHandler(services.User, services.Announcement)
	boardFeedHandler := handlers.NewBoardFeedHandler(services.Board)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 登入狀態與個人資料
		authorized.GET("/session", authHandler.Session)
		authorized.GET("/profile", profileHandler.Me)
		authorized.PUT("/profile", profileHandler.UpdateMe)

		// 學生名冊（只有老師可以查看）
		authorized.GET("/roster", profileHandler.Roster)

		// 公告看板相關
		announcements := authorized.Group("/announcements")
		{
			announcements.GET("", announcementHandler.List)          // 獲取公告列表
			announcements.POST("", announcementHandler.Create)       // 發布公告
			announcements.DELETE("/:id", announcementHandler.Delete) // 刪除公告

			// WebSocket 訂閱（即時收到公告變動）
			announcements.GET("/ws", boardFeedHandler.Subscribe)
		}

		// 評分相關
		ratings := authorized.Group("/ratings")
		{
			ratings.GET("/targets", ratingHandler.Targets) // 獲取可評分對象
			ratings.POST("", ratingHandler.Submit)         // 提交評分
		}

		// 頁面資料
		authorized.GET("/dashboard", dashboardHandler.Home)
		authorized.GET("/duty-council", dashboardHandler.DutyCouncil)
	}
}
