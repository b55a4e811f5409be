package websocket

import (
	"net/http"
	"sync"
	"time"

	"campus_hub_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client 一条通知推送连接
type Client struct {
	Conn      *websocket.Conn
	Uuid      string
	Send      chan []byte // 待推送的通知载荷
	closeOnce sync.Once
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 检查连接的Origin头
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// pongWait 客户端心跳超时时间
const pongWait = 60 * time.Second

// Read 读取循环
// 通知管道是单向推送，读取只用于处理心跳和感知断连
func (c *Client) Read() {
	defer func() {
		if s := GetServer(); s != nil {
			s.Unregister(c)
		}
	}()

	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Write 推送循环
// 从 Send 通道读取通知并写入 websocket，通道关闭时退出
func (c *Client) Write() {
	for payload := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error(err.Error())
			return
		}
	}
}

// NewClientInit 建立一条通知推送连接
// clientId 由 JWT 中间件解析后传入，不信任查询参数
func NewClientInit(c *gin.Context, clientId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &Client{
		Conn: conn,
		Uuid: clientId,
		Send: make(chan []byte, constants.CHANNEL_SIZE),
	}

	s := GetServer()
	if s == nil {
		zap.L().Error("notification server not initialized")
		_ = conn.Close()
		return
	}
	s.Register(client)

	go client.Read()
	go client.Write()
}

// ClientLogout 主动断开某用户的推送连接（登出时调用）
func ClientLogout(clientId string) error {
	s := GetServer()
	if s == nil {
		return nil
	}
	s.mutex.Lock()
	client, ok := s.clients[clientId]
	s.mutex.Unlock()
	if ok {
		s.Unregister(client)
	}
	return nil
}
