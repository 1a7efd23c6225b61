// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有一個身份驗證中間件，負責解析 Bearer token 並把
// 用戶 ID 和角色放進請求上下文，受保護的看板路由都要經過它。
package middleware
