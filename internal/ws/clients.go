package ws

import (
	"github.com/gorilla/websocket"
)

type Client struct {
	Conn    *websocket.Conn
	Message chan *ProgressEvent
	TaskID  string
}

func (c *Client) writeMessage() {
	defer func() {
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		event, ok := <-c.Message
		if !ok {
			return
		}

		err := c.Conn.WriteJSON(event)
		if err != nil {
			return
		}

		if event.Concluido || event.Erro != "" {
			return
		}
	}
}

// readMessage só drena a conexão para detectar o fechamento pelo cliente;
// o canal de progresso é unidirecional.
func (c *Client) readMessage(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
