package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleProgress assina os eventos de progresso de uma tarefa. A conexão é
// encerrada pelo servidor quando a tarefa conclui ou falha.
func (h *Handler) HandleProgress(c echo.Context) error {
	taskID := c.Param("task_id")
	if taskID == "" {
		return c.JSON(http.StatusBadRequest, "task_id obrigatório")
	}

	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println(err)
		return nil
	}

	cl := &Client{
		Conn:    conn,
		Message: make(chan *ProgressEvent, 10),
		TaskID:  taskID,
	}

	h.hub.Register <- cl

	go cl.writeMessage()
	cl.readMessage(h.hub)

	return nil
}
