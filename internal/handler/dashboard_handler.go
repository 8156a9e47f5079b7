package handler

import (
	"context"
	"encoding/json"

	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/internal/pkg/serverutils"
	"lead-generator-be/internal/service"
	internalWS "lead-generator-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	localSessionID = "ws_session_id"
	localInitial   = "ws_initial"
)

type DashboardHandler struct {
	sessionService service.ISessionService
	hub            *internalWS.Hub
	logger         logger.ILogger
}

func NewDashboardHandler(sessionService service.ISessionService, hub *internalWS.Hub, log logger.ILogger) *DashboardHandler {
	return &DashboardHandler{
		sessionService: sessionService,
		hub:            hub,
		logger:         log,
	}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	ws := r.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/sessions/:id", h.Upgrade, websocket.New(h.Serve))
}

// Upgrade resolves the session before the handshake so unknown ids get a
// plain HTTP error instead of an open socket.
func (h *DashboardHandler) Upgrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	dashboard, err := h.sessionService.Dashboard(c.Context(), id)
	if err != nil {
		return err
	}

	initial, err := json.Marshal(dto.NewDashboardMessage(dashboard))
	if err != nil {
		return err
	}

	c.Locals(localSessionID, id)
	c.Locals(localInitial, initial)
	return c.Next()
}

func (h *DashboardHandler) Serve(conn *websocket.Conn) {
	id, ok := conn.Locals(localSessionID).(uuid.UUID)
	if !ok {
		_ = conn.Close()
		return
	}
	initial, _ := conn.Locals(localInitial).([]byte)

	h.logger.Info("WS", "Dashboard client connected", map[string]any{"session_id": id.String()})
	internalWS.ServeWs(h.hub, conn, id, initial, h.onMessage)
	h.logger.Info("WS", "Dashboard client disconnected", map[string]any{"session_id": id.String()})
}

// onMessage treats every inbound frame as a selection change. The refreshed
// dashboard reaches this client through the hub broadcast.
func (h *DashboardHandler) onMessage(c *internalWS.Client, data []byte) {
	var req dto.SelectionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.replyError(c, "invalid selection payload")
		return
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		h.replyError(c, err.Error())
		return
	}

	if _, err := h.sessionService.UpdateSelection(context.Background(), c.SessionID, req); err != nil {
		h.logger.Warn("WS", "Selection update failed", map[string]any{
			"session_id": c.SessionID.String(),
			"error":      err.Error(),
		})
		h.replyError(c, err.Error())
	}
}

func (h *DashboardHandler) replyError(c *internalWS.Client, message string) {
	payload, err := json.Marshal(dto.NewErrorMessage(message))
	if err != nil {
		return
	}
	c.Reply(payload)
}
