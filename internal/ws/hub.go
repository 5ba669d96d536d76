package ws

import "sync"

// Hub mantém os assinantes de progresso agrupados por tarefa. Cada tarefa
// de roteirização é uma "sala"; eventos publicados para a tarefa são
// replicados a todos os assinantes conectados.
type Hub struct {
	Rooms      map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *ProgressEvent
	Mu         *sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *ProgressEvent, 16),
		Mu:         &sync.RWMutex{},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case cl := <-h.Register:
			h.Mu.Lock()
			if _, ok := h.Rooms[cl.TaskID]; !ok {
				h.Rooms[cl.TaskID] = make(map[*Client]bool)
			}
			h.Rooms[cl.TaskID][cl] = true
			h.Mu.Unlock()

		case cl := <-h.Unregister:
			h.Mu.Lock()
			if room, ok := h.Rooms[cl.TaskID]; ok {
				if _, ok := room[cl]; ok {
					delete(room, cl)
					close(cl.Message)
					if len(room) == 0 {
						delete(h.Rooms, cl.TaskID)
					}
				}
			}
			h.Mu.Unlock()

		case ev := <-h.Broadcast:
			h.Mu.RLock()
			for cl := range h.Rooms[ev.TaskID] {
				select {
				case cl.Message <- ev:
				default:
					// assinante lento não bloqueia os demais
				}
			}
			h.Mu.RUnlock()
		}
	}
}

// Publish envia um evento para os assinantes da tarefa sem bloquear o
// produtor quando o hub está saturado.
func (h *Hub) Publish(ev *ProgressEvent) {
	select {
	case h.Broadcast <- ev:
	default:
	}
}
