package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// testServer websocket сервер, отдающий подготовленные кадры
// после получения первого кадра подписки
type testServer struct {
	srv    *httptest.Server
	frames []string
}

func newTestServer(t *testing.T, frames ...string) *testServer {
	t.Helper()

	upgrader := websocket.Upgrader{}
	ts := &testServer{frames: frames}

	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Ждем кадр подписки
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}

		for _, f := range ts.frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}

		// Держим соединение открытым до закрытия клиентом
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ts.srv.URL, "http")
}

func newTestClient(t *testing.T, ts *testServer) *Client {
	t.Helper()

	c := NewClient(Config{
		URL:           ts.wsURL(),
		AppKey:        "app-key",
		ChannelPrefix: "private-conversation",
		PingInterval:  time.Minute,
	}, nopLogger{}, nil)

	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(c.Close)
	return c
}

func TestClient_DeliversMessageCreatedEvents(t *testing.T) {
	ts := newTestServer(t,
		`{"event":"connection_established"}`,
		`{"event":"message.created","channel":"private-conversation.conv-1","data":{"id":"m1","conversation_id":"conv-1","sender_id":9,"body":"привет"}}`,
	)
	c := newTestClient(t, ts)

	require.NoError(t, c.Subscribe("conv-1"))

	select {
	case event := <-c.Events():
		assert.Equal(t, "conv-1", event.ConversationID)
		require.NotNil(t, event.Message)
		assert.Equal(t, "m1", event.Message.ID)
		assert.Equal(t, int64(9), event.Message.SenderID)
		assert.Equal(t, "привет", event.Message.Body)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestClient_AcceptsEventNameAliases(t *testing.T) {
	ts := newTestServer(t,
		`{"event":"new-message","channel":"private-conversation.conv-1","data":{"id":"m1","sender_id":9,"body":"a"}}`,
		`{"event":"some.other.event","channel":"private-conversation.conv-1","data":{}}`,
		`{"event":"client-message-created","channel":"private-conversation.conv-1","data":{"id":"m2","sender_id":9,"body":"b"}}`,
	)
	c := newTestClient(t, ts)

	require.NoError(t, c.Subscribe("conv-1"))

	var ids []string
	for len(ids) < 2 {
		select {
		case event := <-c.Events():
			ids = append(ids, event.Message.ID)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected 2 events, got %d", len(ids))
		}
	}
	assert.Equal(t, []string{"m1", "m2"}, ids)
}

func TestClient_FallsBackToChannelConversationID(t *testing.T) {
	// Payload без conversation_id: id диалога извлекается из имени канала
	ts := newTestServer(t,
		`{"event":"message_created","channel":"private-conversation.conv-42","data":{"id":"m1","sender_id":9,"body":"x"}}`,
	)
	c := newTestClient(t, ts)

	require.NoError(t, c.Subscribe("conv-42"))

	select {
	case event := <-c.Events():
		assert.Equal(t, "conv-42", event.ConversationID)
		assert.Equal(t, "conv-42", event.Message.ConversationID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestClient_SubscribeRequiresConnection(t *testing.T) {
	c := NewClient(Config{URL: "ws://127.0.0.1:0", AppKey: "k"}, nopLogger{}, nil)
	assert.ErrorIs(t, c.Subscribe("conv-1"), ErrNotConnected)
}

func TestClient_ConnectTwice(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts)

	assert.ErrorIs(t, c.Connect(context.Background()), ErrAlreadyConnected)
}

func TestClient_SubscribeSendsFrame(t *testing.T) {
	received := make(chan frame, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var f frame
		_ = json.Unmarshal(data, &f)
		received <- f

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		URL:           "ws" + strings.TrimPrefix(srv.URL, "http"),
		AppKey:        "app-key",
		ChannelPrefix: "private-conversation",
		PingInterval:  time.Minute,
	}, nopLogger{}, nil)
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(c.Close)

	require.NoError(t, c.Subscribe("conv-1"))

	select {
	case f := <-received:
		assert.Equal(t, "subscribe", f.Event)
		assert.Contains(t, string(f.Data), "private-conversation.conv-1")
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe frame not received")
	}

	// Повторная подписка на тот же диалог не шлет второй кадр
	require.NoError(t, c.Subscribe("conv-1"))
}
