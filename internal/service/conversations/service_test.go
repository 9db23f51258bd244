package conversations

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/infra/cache/convcache"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/realtime"
	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

type markReadCall struct {
	conversationID string
	messageID      string
	userID         int64
}

type fakePlatform struct {
	mu sync.Mutex

	conversations []*domain.Conversation
	page          *domain.MessagePage
	listErr       error
	sentMessage   *domain.Message
	sendErr       error
	markReadErr   error
	markReadCalls []markReadCall
}

func (f *fakePlatform) ListConversations(_ context.Context, _ int64) ([]*domain.Conversation, error) {
	return f.conversations, f.listErr
}

func (f *fakePlatform) ListMessages(_ context.Context, _, _ string, _ int) (*domain.MessagePage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func (f *fakePlatform) SendMessage(_ context.Context, _ string, _ *platformapi.SendMessageRequest) (*domain.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return f.sentMessage, nil
}

func (f *fakePlatform) MarkMessageRead(_ context.Context, conversationID, messageID string, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markReadCalls = append(f.markReadCalls, markReadCall{conversationID, messageID, userID})
	return f.markReadErr
}

type fakeRealtime struct {
	mu           sync.Mutex
	subscribed   []string
	unsubscribed []string
	events       chan realtime.MessageEvent
}

func newFakeRealtime() *fakeRealtime {
	return &fakeRealtime{events: make(chan realtime.MessageEvent, 8)}
}

func (f *fakeRealtime) Subscribe(conversationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribed = append(f.subscribed, conversationID)
	return nil
}

func (f *fakeRealtime) Unsubscribe(conversationID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = append(f.unsubscribed, conversationID)
}

func (f *fakeRealtime) Events() <-chan realtime.MessageEvent {
	return f.events
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func message(id string, senderID int64, readBy ...int64) *domain.Message {
	receipts := make([]domain.ReadReceipt, 0, len(readBy))
	for _, uid := range readBy {
		receipts = append(receipts, domain.ReadReceipt{UserID: uid, ReadAt: time.Now()})
	}
	return &domain.Message{
		ID:             id,
		ConversationID: "conv-1",
		SenderID:       senderID,
		Body:           "msg " + id,
		ReadReceipts:   receipts,
		CreatedAt:      time.Now(),
	}
}

func TestGetMessages_MarksOnlyUnreadForeignMessages(t *testing.T) {
	// 5 сообщений: два собственных, одно уже прочитано, два непрочитанных чужих
	platform := &fakePlatform{
		page: &domain.MessagePage{
			ConversationID: "conv-1",
			Messages: []*domain.Message{
				message("m1", 7),     // собственное
				message("m2", 9),     // непрочитанное
				message("m3", 9, 7),  // уже прочитано пользователем 7
				message("m4", 7),     // собственное
				message("m5", 9),     // непрочитанное
			},
		},
	}
	svc := NewService(platform, convcache.New(), newFakeRealtime(), nopLogger{})

	resp, err := svc.GetMessages(context.Background(), 7, "conv-1", "", 50)
	require.NoError(t, err)
	assert.Len(t, resp.Messages, 5)

	require.Len(t, platform.markReadCalls, 2)
	marked := []string{platform.markReadCalls[0].messageID, platform.markReadCalls[1].messageID}
	assert.ElementsMatch(t, []string{"m2", "m5"}, marked)
	for _, call := range platform.markReadCalls {
		assert.Equal(t, "conv-1", call.conversationID)
		assert.Equal(t, int64(7), call.userID)
	}
}

func TestGetMessages_MarkReadFailureDoesNotFailFetch(t *testing.T) {
	platform := &fakePlatform{
		page: &domain.MessagePage{
			ConversationID: "conv-1",
			Messages:       []*domain.Message{message("m1", 9)},
		},
		markReadErr: errors.New("receipt endpoint down"),
	}
	svc := NewService(platform, convcache.New(), newFakeRealtime(), nopLogger{})

	resp, err := svc.GetMessages(context.Background(), 7, "conv-1", "", 50)
	require.NoError(t, err)
	assert.Len(t, resp.Messages, 1)
}

func TestGetMessages_SubscribesConversation(t *testing.T) {
	platform := &fakePlatform{
		page: &domain.MessagePage{ConversationID: "conv-1"},
	}
	rt := newFakeRealtime()
	svc := NewService(platform, convcache.New(), rt, nopLogger{})

	_, err := svc.GetMessages(context.Background(), 7, "conv-1", "", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"conv-1"}, rt.subscribed)
}

func TestGetMessages_MergesRealtimeMessages(t *testing.T) {
	cache := convcache.New()
	// Real-time сообщение пришло до выборки и его нет в ответе платформы
	rtMsg := message("rt-1", 9)
	rtMsg.CreatedAt = time.Now().Add(time.Hour)
	cache.Append("conv-1", rtMsg)

	platform := &fakePlatform{
		page: &domain.MessagePage{
			ConversationID: "conv-1",
			Messages:       []*domain.Message{message("m1", 9)},
		},
	}
	svc := NewService(platform, cache, newFakeRealtime(), nopLogger{})

	resp, err := svc.GetMessages(context.Background(), 7, "conv-1", "", 50)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "rt-1", resp.Messages[1].ID)
}

func TestGetMessages_NotFound(t *testing.T) {
	platform := &fakePlatform{listErr: platformapi.ErrConversationNotFound}
	svc := NewService(platform, convcache.New(), nil, nopLogger{})

	_, err := svc.GetMessages(context.Background(), 7, "missing", "", 50)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func sendReq(userID int64, body string) *models.SendMessageRequest {
	return &models.SendMessageRequest{UserID: userID, Body: body}
}

func TestSendMessage_Validation(t *testing.T) {
	svc := NewService(&fakePlatform{}, convcache.New(), nil, nopLogger{})

	_, err := svc.SendMessage(context.Background(), "conv-1", sendReq(7, ""))
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := strings.Repeat("x", domain.MaxMessageLength+1)
	_, err = svc.SendMessage(context.Background(), "conv-1", sendReq(7, long))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSendMessage_InvalidatesCache(t *testing.T) {
	cache := convcache.New()
	cache.Append("conv-1", message("m1", 9))

	platform := &fakePlatform{sentMessage: message("m2", 7)}
	svc := NewService(platform, cache, nil, nopLogger{})

	resp, err := svc.SendMessage(context.Background(), "conv-1", sendReq(7, "привет"))
	require.NoError(t, err)
	assert.Equal(t, "m2", resp.ID)

	_, found := cache.Get("conv-1")
	assert.False(t, found)
}

func TestReleaseConversation(t *testing.T) {
	cache := convcache.New()
	cache.Append("conv-1", message("m1", 9))

	rt := newFakeRealtime()
	svc := NewService(&fakePlatform{}, cache, rt, nopLogger{})

	svc.ReleaseConversation("conv-1")

	assert.Equal(t, []string{"conv-1"}, rt.unsubscribed)
	_, found := cache.Get("conv-1")
	assert.False(t, found)
}

func TestRun_MergesEventsIntoCache(t *testing.T) {
	cache := convcache.New()
	rt := newFakeRealtime()
	svc := NewService(&fakePlatform{}, cache, rt, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	rt.events <- realtime.MessageEvent{ConversationID: "conv-1", Message: message("m1", 9)}
	rt.events <- realtime.MessageEvent{ConversationID: "conv-1", Message: message("m1", 9)} // дубль
	rt.events <- realtime.MessageEvent{ConversationID: "conv-1", Message: message("m2", 9)}

	require.Eventually(t, func() bool {
		page, ok := cache.Get("conv-1")
		return ok && len(page.Messages) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRun_StopsWhenEventStreamCloses(t *testing.T) {
	rt := newFakeRealtime()
	svc := NewService(&fakePlatform{}, convcache.New(), rt, nopLogger{})

	done := make(chan struct{})
	go func() {
		svc.Run(context.Background())
		close(done)
	}()

	close(rt.events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after event stream close")
	}
}
