package controllers

import (
	"halaqa_go/services/websocket"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// WebSocketHandler upgrades the connection and hands it to the hub.
func (wc *WebSocketController) WebSocketHandler() fiber.Handler {
	return fiberws.New(func(c *fiberws.Conn) {
		wc.hub.ServeConn(c)
	})
}

// GetWebSocketStats reports hub connection counts.
func (wc *WebSocketController) GetWebSocketStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"connected_clients": wc.hub.ClientCount(),
	})
}
