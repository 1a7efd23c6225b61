// Package api 處理公告看板後端的 HTTP 請求路由。
//
// 這個包包含了所有的 HTTP 處理器（handlers），涵蓋認證、個人資料、
// 公告看板、評分和 WebSocket 訂閱。它負責將 HTTP 請求轉換為適當的
// 服務調用，並將結果轉換回 HTTP 響應。
package api
