package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/internal/service"
	internalWS "smart-trolley-be/internal/websocket"
	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/events"
	"smart-trolley-be/pkg/store"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, events.Event) error { return nil }

func newVoiceFixture(t *testing.T) (*VoiceHandler, *internalWS.Hub, uuid.UUID) {
	t.Helper()
	assistant := service.NewAssistantService(
		memory.NewSessionRepository(),
		store.DefaultLayout(),
		catalog.Default(),
		noopPublisher{},
		noopLogger{},
	)
	res, err := assistant.CreateSession(context.Background())
	require.NoError(t, err)

	hub := internalWS.NewHub(nil, noopLogger{})
	go hub.Run()

	return NewVoiceHandler(assistant, hub, noopLogger{}), hub, res.SessionId
}

func connectClient(t *testing.T, hub *internalWS.Hub, sid uuid.UUID, wantCount int) *internalWS.Client {
	t.Helper()
	client := &internalWS.Client{Hub: hub, SessionID: sid, Send: make(chan []byte, 8)}
	hub.Register(client)
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(sid) != wantCount {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return client
}

// Frames arrive synchronously from the inbound loop, so the reply is either
// already buffered on Send or was never dispatched.
func assistantFrame(t *testing.T, client *internalWS.Client) dto.VoiceAssistantPayload {
	t.Helper()
	var frame struct {
		Type string                    `json:"type"`
		Data dto.VoiceAssistantPayload `json:"data"`
	}
	select {
	case raw := <-client.Send:
		require.NoError(t, json.Unmarshal(raw, &frame))
		assert.Equal(t, "assistant", frame.Type)
	default:
		t.Fatal("no assistant frame delivered")
	}
	return frame.Data
}

func TestStopFrameHaltsDispatchUntilReconnect(t *testing.T) {
	h, hub, sid := newVoiceFixture(t)

	first := connectClient(t, hub, sid, 1)
	inbound := h.makeInbound(sid)

	inbound(first, []byte(`{"type":"utterance","text":"where is the milk"}`))
	reply := assistantFrame(t, first)
	assert.Equal(t, store.ViewMap, reply.View)
	assert.Contains(t, reply.Speak, "milk")
	require.NotNil(t, reply.Target)

	inbound(first, []byte(`{"type":"stop"}`))
	inbound(first, []byte(`{"type":"utterance","text":"where is the bread"}`))
	assert.Empty(t, first.Send, "utterances after a stop frame must not be dispatched")

	// A new connection gets its own loop and dispatches again.
	second := connectClient(t, hub, sid, 2)
	inbound2 := h.makeInbound(sid)
	inbound2(second, []byte(`{"type":"utterance","text":"where is the bread"}`))
	reply = assistantFrame(t, second)
	assert.Contains(t, reply.Speak, "bread")
}

func TestInboundIgnoresMalformedAndUnknownFrames(t *testing.T) {
	h, hub, sid := newVoiceFixture(t)

	client := connectClient(t, hub, sid, 1)
	inbound := h.makeInbound(sid)

	inbound(client, []byte(`{not json`))
	inbound(client, []byte(`{"type":"telemetry"}`))
	assert.Empty(t, client.Send)

	// The loop keeps working after garbage frames.
	inbound(client, []byte(`{"type":"utterance","text":"show my list"}`))
	reply := assistantFrame(t, client)
	assert.Equal(t, store.ViewList, reply.View)
}
