package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"prefect_board/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// BoardFeedHandler 處理公告看板的 WebSocket 訂閱
type BoardFeedHandler struct {
	board *service.BoardManager
}

// NewBoardFeedHandler 創建一個新的 BoardFeedHandler 實例
func NewBoardFeedHandler(board *service.BoardManager) *BoardFeedHandler {
	return &BoardFeedHandler{board: board}
}

// Subscribe 處理看板訂閱的連接請求
// 訂閱後客戶端會收到公告發布、刪除和過期的即時事件
func (h *BoardFeedHandler) Subscribe(c *gin.Context) {
	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	client := &service.Client{
		Conn:     conn,
		UserID:   currentUserID(c),
		SendChan: make(chan *service.BoardEvent, 256), // 設置緩衝大小為 256 的事件通道
	}

	h.board.HandleClient(client)
}
