// Package websocket 提供通知推送网关
// 客户端建立连接后，活动事件分发器将通知实时推送给在线用户
package websocket

import (
	"context"
	"sync"

	myredis "campus_hub_server/internal/dao/redis"

	"go.uber.org/zap"
)

// onlineUsersKey Redis 在线用户集合键
// 多实例部署时各实例共享在线状态
const onlineUsersKey = "online_users"

// Server 通知推送服务
// 维护在线客户端连接，实现 mq.NotificationSender 接口
type Server struct {
	clients map[string]*Client
	mutex   sync.Mutex
	cache   myredis.CacheService
}

var server *Server

// InitServer 初始化通知推送服务
func InitServer(cache myredis.CacheService) *Server {
	server = &Server{
		clients: make(map[string]*Client),
		cache:   cache,
	}
	return server
}

// GetServer 获取通知推送服务实例
func GetServer() *Server {
	return server
}

// Register 注册客户端连接
// 同一用户重复连接时关闭旧连接
func (s *Server) Register(client *Client) {
	s.mutex.Lock()
	if old, ok := s.clients[client.Uuid]; ok {
		old.closeOnce.Do(func() {
			close(old.Send)
			_ = old.Conn.Close()
		})
	}
	s.clients[client.Uuid] = client
	s.mutex.Unlock()

	if err := s.cache.AddToSet(context.Background(), onlineUsersKey, client.Uuid); err != nil {
		zap.L().Error("add online user failed", zap.Error(err))
	}
	zap.L().Info("notification client connected", zap.String("uuid", client.Uuid))
}

// Unregister 注销客户端连接
func (s *Server) Unregister(client *Client) {
	s.mutex.Lock()
	if cur, ok := s.clients[client.Uuid]; ok && cur == client {
		delete(s.clients, client.Uuid)
	}
	s.mutex.Unlock()

	client.closeOnce.Do(func() {
		close(client.Send)
		_ = client.Conn.Close()
	})

	if err := s.cache.RemoveFromSet(context.Background(), onlineUsersKey, client.Uuid); err != nil {
		zap.L().Error("remove online user failed", zap.Error(err))
	}
	zap.L().Info("notification client disconnected", zap.String("uuid", client.Uuid))
}

// ==================== mq.NotificationSender 接口实现 ====================

// SendToUser 向指定用户推送通知
// 用户不在线时静默跳过
func (s *Server) SendToUser(userId string, payload []byte) error {
	s.mutex.Lock()
	client, ok := s.clients[userId]
	s.mutex.Unlock()
	if !ok {
		return nil
	}

	select {
	case client.Send <- payload:
	default:
		// 发送缓冲满说明连接已不健康，丢弃本条推送
		zap.L().Warn("notification send buffer full", zap.String("uuid", userId))
	}
	return nil
}

// IsOnline 判断用户是否在线（本实例内）
func (s *Server) IsOnline(userId string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, ok := s.clients[userId]
	return ok
}

// OnlineUsers 获取全部在线用户 uuid（跨实例，读 Redis 集合）
func (s *Server) OnlineUsers() ([]string, error) {
	return s.cache.GetSetMembers(context.Background(), onlineUsersKey)
}
