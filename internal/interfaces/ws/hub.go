// Package ws mantiene las conexiones websocket de los clientes y les avisa
// cuando una colección cambió, para que refresquen su snapshot local.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// SnapshotEvent mensaje enviado a los clientes: qué colección cambió y cómo.
// El cliente decide si recarga; el payload no viaja por el socket.
type SnapshotEvent struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}

// Hub registra conexiones y difunde eventos de snapshot a todas.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.Mutex
	log        *logger.Logger
}

// NewHub construye el hub. Llamar Run en una goroutine antes de aceptar conexiones.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		log:        log,
	}
}

// Run atiende registro, baja y difusión. Bloquea; correr en goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("cliente ws conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// SnapshotChanged difunde el evento a todos los clientes conectados.
// Satisface los puertos SnapshotNotifier de los casos de uso.
func (h *Hub) SnapshotChanged(collection, action string) {
	msg, err := json.Marshal(SnapshotEvent{Collection: collection, Action: action, At: time.Now()})
	if err != nil {
		h.log.Warn().Err(err).Msg("ws: marshal evento")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("collection", collection).Msg("ws: broadcast saturado, evento descartado")
	}
}

// Handler atiende una conexión entrante. Lee (y descarta) mensajes del cliente
// solo para detectar el cierre.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
