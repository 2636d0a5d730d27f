package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10

	defaultPushInterval = 30 * time.Second
)

type AvailabilityHandler struct {
	q            queries.AvailabilityQueries
	pushInterval time.Duration
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, cfg config.Config, logger *slog.Logger) *AvailabilityHandler {
	origins := cfg.CORS.AllowOrigins
	interval := cfg.Availability.PushInterval
	if interval <= 0 {
		interval = defaultPushInterval
	}
	return &AvailabilityHandler{
		q:            q,
		pushInterval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(origins, origin) || origin == "http://"+r.Host || origin == "https://"+r.Host
			},
		},
		logger: logger,
	}
}

// @Summary Availability board
// @Description Status of every equipment item at the current instant
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatusBoardResponse
// @Router /availability [get]
func (h *AvailabilityHandler) Board(c *gin.Context) {
	board, err := h.q.Board(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusBoard(board))
}

// @Summary Availability of one equipment item
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param equipmentId path string true "Equipment ID"
// @Success 200 {object} resdto.SingleStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/{equipmentId} [get]
func (h *AvailabilityHandler) ForEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "equipmentId")
	if !ok {
		return
	}
	status, err := h.q.ForEquipment(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentStatus(status))
}

// @Summary Availability stream
// @Description WebSocket. Pushes the full board on connect and then every push interval.
// @Tags availability
// @Security BearerAuth
// @Success 101 {object} resdto.StatusBoardResponse
// @Router /availability/stream [get]
func (h *AvailabilityHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the handshake failure
		h.logger.Warn("availability stream upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	h.logger.Info("availability stream opened", "client_ip", c.ClientIP())
	defer h.logger.Info("availability stream closed", "client_ip", c.ClientIP())

	go h.readLoop(conn, cancel)
	h.writeLoop(ctx, conn)
}

// readLoop drains client frames so close and pong control frames are processed.
func (h *AvailabilityHandler) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("availability stream read failed", "error", err.Error())
			}
			return
		}
	}
}

func (h *AvailabilityHandler) writeLoop(ctx context.Context, conn *websocket.Conn) {
	push := time.NewTicker(h.pushInterval)
	defer push.Stop()
	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	if !h.pushBoard(ctx, conn) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))
			return
		case <-push.C:
			if !h.pushBoard(ctx, conn) {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// pushBoard reports false once the connection is no longer usable.
// A failed evaluation is logged and retried on the next tick.
func (h *AvailabilityHandler) pushBoard(ctx context.Context, conn *websocket.Conn) bool {
	board, err := h.q.Board(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		h.logger.Error("availability stream evaluation failed", "error", err.Error())
		return true
	}

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteJSON(resdto.FromStatusBoard(board)); err != nil {
		h.logger.Debug("availability stream write failed", "error", err.Error())
		return false
	}
	return true
}
