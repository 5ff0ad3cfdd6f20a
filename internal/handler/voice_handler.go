package handler

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/logger"
	"smart-trolley-be/internal/service"
	internalWS "smart-trolley-be/internal/websocket"
)

// VoiceHandler bridges the tablet's voice channel to the assistant pipeline.
type VoiceHandler struct {
	assistant service.IAssistantService
	hub       *internalWS.Hub
	logger    logger.ILogger
}

func NewVoiceHandler(assistant service.IAssistantService, hub *internalWS.Hub, log logger.ILogger) *VoiceHandler {
	return &VoiceHandler{
		assistant: assistant,
		hub:       hub,
		logger:    log,
	}
}

func (h *VoiceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/voice/:sessionId", h.ServeWs)
}

// ServeWs upgrades the connection and runs the voice loop for one session.
func (h *VoiceHandler) ServeWs(c *fiber.Ctx) error {
	sessionId, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	// Reject unknown sessions before the upgrade.
	if _, err := h.assistant.GetSession(c.Context(), sessionId); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("VoiceHandler", "Starting voice session", map[string]interface{}{"session_id": sessionId})
			internalWS.ServeWs(h.hub, conn, sessionId, h.makeInbound(sessionId))
			h.logger.Info("VoiceHandler", "Voice session ended", map[string]interface{}{"session_id": sessionId})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// makeInbound builds the per-connection message loop. A "stop" frame flips
// the stopped flag: an utterance already in flight still completes, but no
// later frame on this connection is dispatched. Reconnecting starts fresh.
func (h *VoiceHandler) makeInbound(sessionId uuid.UUID) internalWS.InboundHandler {
	var stopped atomic.Bool

	return func(client *internalWS.Client, payload []byte) {
		var inbound dto.VoiceInbound
		if err := json.Unmarshal(payload, &inbound); err != nil {
			h.logger.Warn("VoiceHandler", "Unparseable voice frame", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			return
		}

		switch inbound.Type {
		case "stop":
			stopped.Store(true)
			h.logger.Info("VoiceHandler", "Voice loop stopped by client", map[string]interface{}{"session_id": sessionId})

		case "utterance":
			if stopped.Load() {
				return
			}
			res, err := h.assistant.HandleUtterance(context.Background(), sessionId, inbound.Text)
			if err != nil {
				h.logger.Error("VoiceHandler", "Utterance dispatch failed", map[string]interface{}{
					"session_id": sessionId,
					"error":      err.Error(),
				})
				return
			}

			out, _ := json.Marshal(map[string]interface{}{
				"type": "assistant",
				"data": dto.VoiceAssistantPayload{
					Speak:  res.Response,
					View:   res.ActiveView,
					Target: res.Target,
				},
			})
			h.hub.SendToClient(client, out)

		default:
			h.logger.Debug("VoiceHandler", "Ignoring unknown frame type", map[string]interface{}{
				"session_id": sessionId,
				"frame_type": inbound.Type,
			})
		}
	}
}
