// Package realtime implementa el canal websocket de notificaciones del tablero.
// Es el transporte del Notifier: entrega best-effort, sin acuse de recibo.
// Un cliente lento no puede frenar el flujo de trabajo: si su buffer se llena,
// se lo desconecta y el resto sigue recibiendo.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/pkg/logger"
)

var _ manufacturing.Notifier = (*Hub)(nil)

// envelope es el mensaje en el cable: nombre del evento + payload.
type envelope struct {
	Event string              `json:"event"`
	Data  manufacturing.Event `json:"data"`
}

// Hub mantiene los clientes websocket conectados y reparte eventos.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]chan []byte
	bufferSize int
	log        *logger.Logger
}

// NewHub construye el hub. bufferSize es la cola de salida por cliente.
func NewHub(bufferSize int, log *logger.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Hub{
		clients:    make(map[*websocket.Conn]chan []byte),
		bufferSize: bufferSize,
		log:        log,
	}
}

// Notify implementa manufacturing.Notifier: serializa el evento y lo reparte a
// todos los clientes sin bloquear. Cliente con buffer lleno queda marcado para
// desconexión. Sin clientes conectados no pasa nada: no es un error.
func (h *Hub) Notify(event string, payload manufacturing.Event) {
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("serializar evento realtime")
		return
	}

	var dropped []*websocket.Conn
	h.mu.RLock()
	for conn, out := range h.clients {
		select {
		case out <- msg:
		default:
			// Buffer lleno: cliente demasiado lento, se descarta
			dropped = append(dropped, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range dropped {
		h.log.Warn().Str("event", event).Msg("cliente realtime lento, desconectando")
		h.remove(conn)
		_ = conn.Close()
	}
}

// Handler devuelve el handler Fiber para la ruta /ws.
// Upgrade a websocket, registro del cliente y loop de lectura hasta que cierre.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		out := h.add(conn)

		// Writer dedicado: un solo goroutine escribe en la conexión
		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range out {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		// El cliente no manda nada útil; el loop de lectura solo detecta el cierre
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.remove(conn)
		<-done
	})
}

// Upgrade es el middleware que exige la cabecera de upgrade websocket en /ws.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Clients devuelve la cantidad de clientes conectados (para health/tests).
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) chan []byte {
	out := make(chan []byte, h.bufferSize)
	h.mu.Lock()
	h.clients[conn] = out
	h.mu.Unlock()
	h.log.Debug().Int("clients", h.Clients()).Msg("cliente realtime conectado")
	return out
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	out, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(out)
	}
	h.mu.Unlock()
}
