package service

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"prefect_board/internal/models"
)

// 公告看板推送的事件類型
const (
	EventAnnouncementCreated = "announcement_created"
	EventAnnouncementDeleted = "announcement_deleted"
	EventAnnouncementExpired = "announcement_expired"
)

// BoardEvent 公告看板推送給客戶端的事件
type BoardEvent struct {
	Type           string               `json:"type"`
	Announcement   *models.Announcement `json:"announcement,omitempty"`
	AnnouncementID string               `json:"announcement_id,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
}

// Client 代表一個訂閱公告看板的 WebSocket 連接
type Client struct {
	Conn     *websocket.Conn  // WebSocket 連接
	UserID   uint             // 用戶 ID
	SendChan chan *BoardEvent // 事件發送通道，用於異步傳送事件
}

// BoardManager 管理公告看板的所有 WebSocket 連接和事件廣播
type BoardManager struct {
	clients    map[*Client]bool // 目前在線的訂閱者
	clientsMux sync.RWMutex     // 用於保護 clients map 的讀寫鎖
}

// NewBoardManager 創建並初始化新的公告看板管理器
func NewBoardManager() *BoardManager {
	return &BoardManager{
		clients: make(map[*Client]bool),
	}
}

// HandleClient 處理新的看板訂閱連接，阻塞直到連接關閉
func (m *BoardManager) HandleClient(client *Client) {
	m.addClient(client)

	// 確保連接關閉時清理資源，事件通道由 removeClient 負責關閉
	defer func() {
		m.removeClient(client)
		client.Conn.Close()
	}()

	// 啟動讀寫處理
	go m.writePump(client)
	m.readPump(client)
}

// readPump 維持連接的心跳，看板是單向推送，客戶端發來的內容一律忽略
func (m *BoardManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送事件的邏輯
func (m *BoardManager) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-client.SendChan:
			// 設置寫入超時
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast 向所有訂閱者廣播事件
// 發送在持有讀鎖的情況下進行且不會阻塞，事件通道只會在
// removeClient 持有寫鎖時關閉，所以不可能向已關閉的通道發送。
func (m *BoardManager) Broadcast(event *BoardEvent) {
	var stale []*Client

	m.clientsMux.RLock()
	for client := range m.clients {
		select {
		case client.SendChan <- event:
			// 事件成功加入發送隊列
		default:
			// 客戶端事件隊列已滿，稍後移除
			stale = append(stale, client)
		}
	}
	m.clientsMux.RUnlock()

	for _, client := range stale {
		m.removeClient(client)
		client.Conn.Close()
	}
}

// BroadcastCreated 廣播新公告發布的事件
func (m *BoardManager) BroadcastCreated(announcement *models.Announcement) {
	m.Broadcast(&BoardEvent{
		Type:         EventAnnouncementCreated,
		Announcement: announcement,
		Timestamp:    time.Now(),
	})
}

// BroadcastDeleted 廣播公告被發布者刪除的事件
func (m *BoardManager) BroadcastDeleted(announcementID string) {
	m.Broadcast(&BoardEvent{
		Type:           EventAnnouncementDeleted,
		AnnouncementID: announcementID,
		Timestamp:      time.Now(),
	})
}

// BroadcastExpired 廣播公告因超過時限被清除的事件
func (m *BoardManager) BroadcastExpired(announcementID string) {
	m.Broadcast(&BoardEvent{
		Type:           EventAnnouncementExpired,
		AnnouncementID: announcementID,
		Timestamp:      time.Now(),
	})
}

// ClientCount 獲取目前在線的訂閱者數量
func (m *BoardManager) ClientCount() int {
	m.clientsMux.RLock()
	defer m.clientsMux.RUnlock()

	return len(m.clients)
}

// addClient 安全地添加新的訂閱者
func (m *BoardManager) addClient(client *Client) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	m.clients[client] = true
}

// removeClient 安全地移除訂閱者並關閉其事件通道
// 以是否還在 clients 中作為判斷，重複移除不會重複關閉通道
func (m *BoardManager) removeClient(client *Client) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	if _, ok := m.clients[client]; ok {
		delete(m.clients, client)
		close(client.SendChan)
	}
}
