package api

import (
	"log/slog"
	"net/http"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
	streamMaxMessage = 4 << 10
)

// ChangeFeed delivers occupancy change events.
type ChangeFeed interface {
	Subscribe() (<-chan session.Event, func())
}

type StreamHandler struct {
	q        queries.AvailabilityQueries
	feed     ChangeFeed
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewStreamHandler(q queries.AvailabilityQueries, feed ChangeFeed, cors config.CORSConfig, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		q:    q,
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || cors.AllowsOrigin(origin)
			},
		},
		logger: logger,
	}
}

// draft is the selection one client is building up.
type draft struct {
	date     timegrid.Date
	hour     *timegrid.Slot
	table    occupancy.TableID
	duration float64
	extras   reservation.Extras
}

func (d *draft) response() *resdto.DraftResponse {
	return &resdto.DraftResponse{
		Date:     d.date,
		Hour:     d.hour,
		Table:    d.table,
		Duration: d.duration,
		Starters: d.extras.Starters(),
	}
}

// @Summary Availability stream
// @Description Websocket. Clients send select/toggle_starter messages and receive snapshots; the server pushes {"type":"update"} when occupancy changes.
// @Tags availability
// @Router /availability/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	events, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	defer close(done)
	incoming := make(chan reqdto.StreamMessage)
	readErr := make(chan error, 1)
	go h.readLoop(conn, done, incoming, readErr)

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	ctx := c.Request.Context()
	d := &draft{}
	for {
		var out []resdto.StreamMessage
		select {
		case <-ctx.Done():
			return
		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed", slog.String("error", err.Error()))
			}
			return
		case msg := <-incoming:
			out = append(out, h.apply(c, d, msg))
		case ev, ok := <-events:
			if !ok {
				return
			}
			out = append(out, resdto.StreamMessage{Type: resdto.StreamUpdate, Generation: ev.Generation, Date: ev.Date})
			if d.hour != nil {
				out = append(out, h.snapshot(c, d))
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			continue
		}

		for _, m := range out {
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(m); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) readLoop(conn *websocket.Conn, done <-chan struct{}, incoming chan<- reqdto.StreamMessage, readErr chan<- error) {
	conn.SetReadLimit(streamMaxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		var msg reqdto.StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			readErr <- err
			return
		}
		select {
		case incoming <- msg:
		case <-done:
			return
		}
	}
}

func (h *StreamHandler) apply(c *gin.Context, d *draft, msg reqdto.StreamMessage) resdto.StreamMessage {
	switch msg.Type {
	case reqdto.StreamSelect:
		date, err := timegrid.ParseDate(msg.Date)
		if err != nil {
			return streamError(err)
		}
		hour, err := timegrid.ParseHour(msg.Hour)
		if err != nil {
			return streamError(err)
		}
		d.date, d.hour = date, &hour
		d.table, d.duration = msg.Table, msg.Duration
	case reqdto.StreamToggleStarter:
		d.extras = d.extras.Toggle(msg.Value)
	default:
		return resdto.StreamMessage{Type: resdto.StreamError, Error: "unknown message type " + msg.Type}
	}
	return h.snapshot(c, d)
}

func (h *StreamHandler) snapshot(c *gin.Context, d *draft) resdto.StreamMessage {
	out := resdto.StreamMessage{Type: resdto.StreamSnapshot, Draft: d.response()}
	if d.hour == nil {
		return out
	}

	ctx := c.Request.Context()
	slot, err := h.q.Slot(ctx, d.date, *d.hour)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Generation = slot.Generation
	out.Slot = resdto.FromSlotAvailability(slot)

	if d.table != "" && d.duration > 0 {
		probe, err := h.q.Probe(ctx, d.date, *d.hour, d.table, d.duration)
		if err != nil {
			out.Error = err.Error()
			return out
		}
		out.Probe = resdto.FromTableProbe(probe)
	}
	return out
}

func streamError(err error) resdto.StreamMessage {
	return resdto.StreamMessage{Type: resdto.StreamError, Error: err.Error()}
}
