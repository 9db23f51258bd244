package platformapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second, nopLogger{}, nil)
}

func TestClient_ListBookedSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/7/slots", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"user_id":7,"topic":"demo","start_time":"2025-09-01T10:00:00Z","end_time":"2025-09-01T10:30:00Z","slotable_type":"meeting","slotable_id":5}]`))
	})

	slots, err := client.ListBookedSlots(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, "meeting", slots[0].SlotableType)
	assert.Equal(t, time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), slots[0].StartTime)
}

func TestClient_CreateMeeting_SendsIdempotencyKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/meetings", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("Idempotency-Key"))

		var req CreateMeetingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(1), req.OrganizerID)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"organizer_id":1,"participant_id":2,"topic":"demo","status":"pending","start_time":"2025-09-01T10:00:00Z","end_time":"2025-09-01T10:30:00Z","created_at":"2025-09-01T09:00:00Z","updated_at":"2025-09-01T09:00:00Z"}`))
	})

	meeting, err := client.CreateMeeting(context.Background(), &CreateMeetingRequest{
		OrganizerID:   1,
		ParticipantID: 2,
		Topic:         "demo",
		StartTime:     time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC),
	}, "key-123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), meeting.ID)
}

func TestClient_UpstreamErrorKeepsMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"message":"тема обязательна"}`))
	})

	_, err := client.CreateMeeting(context.Background(), &CreateMeetingRequest{}, "key")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "тема обязательна", apiErr.Message)
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListBookedSlots(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_MeetingNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"встреча не найдена"}`))
	})

	err := client.CancelMeeting(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestClient_ListMessages_QueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/conv-1/messages", r.URL.Path)
		assert.Equal(t, "cur-2", r.URL.Query().Get("cursor"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"conversation_id":"conv-1","messages":[],"next_cursor":"cur-3"}`))
	})

	page, err := client.ListMessages(context.Background(), "conv-1", "cur-2", 25)
	require.NoError(t, err)
	assert.Equal(t, "cur-3", page.NextCursor)
}

func TestClient_MarkMessageRead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations/conv-1/messages/m1/read", r.URL.Path)

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(7), body["user_id"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.MarkMessageRead(context.Background(), "conv-1", "m1", 7)
	assert.NoError(t, err)
}
