// Package socket relays room events from redis pubsub to websocket
// clients.
package socket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("socket")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler handles websocket connections
type Handler interface {
	Connect(c echo.Context) error
}

type handler struct {
	rdb *redis.Client
}

// NewHandler creates a new handler
func NewHandler(rdb *redis.Client) Handler {
	return &handler{rdb}
}

type subscribeRequest struct {
	Rooms []string `json:"rooms"`
}

// Connect upgrades to a websocket and relays events for the rooms the
// client subscribes to. Each subscribe request replaces the previous
// subscription set.
func (h *handler) Connect(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Socket.Handler.Connect")
	defer span.End()

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer ws.Close()

	pubsub := h.rdb.Subscribe(ctx)
	defer pubsub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			err := ws.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
			if err != nil {
				slog.Error("failed to write websocket message", slog.String("error", err.Error()), slog.String("module", "socket"))
				return
			}
		}
	}()

	for {
		var request subscribeRequest
		err := ws.ReadJSON(&request)
		if err != nil {
			break
		}

		channels := make([]string, 0, len(request.Rooms))
		for _, roomID := range request.Rooms {
			channels = append(channels, core.RoomChannel(roomID))
		}

		err = pubsub.Unsubscribe(ctx)
		if err != nil {
			span.RecordError(err)
			break
		}
		if len(channels) > 0 {
			err = pubsub.Subscribe(ctx, channels...)
			if err != nil {
				span.RecordError(err)
				break
			}
		}
	}

	pubsub.Close()
	<-done

	return nil
}
