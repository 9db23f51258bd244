package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик событий.
// Может быть nil, если метрики отключены.
type MetricsRecorder interface {
	RecordRealtimeEvent(event string)
}

// Config настройки клиента pub/sub канала
type Config struct {
	URL           string
	AppKey        string
	ChannelPrefix string
	PingInterval  time.Duration
}

// Client клиент pub/sub канала платформы.
// Явно конструируется и передается зависимостям; жизненный цикл
// (Connect/Close) принадлежит вызывающей стороне, а не пакету.
type Client struct {
	cfg     Config
	log     Logger
	metrics MetricsRecorder

	mu       sync.Mutex
	conn     *websocket.Conn
	channels map[string]struct{}
	closed   bool

	events chan MessageEvent
	done   chan struct{}
}

// NewClient создает новый экземпляр клиента pub/sub канала
func NewClient(cfg Config, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		channels: make(map[string]struct{}),
		events:   make(chan MessageEvent, 64),
		done:     make(chan struct{}),
	}
}

// Connect устанавливает websocket соединение и запускает цикл чтения
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return ErrAlreadyConnected
	}
	if c.closed {
		return ErrConnectionClosed
	}

	url := fmt.Sprintf("%s/%s", c.cfg.URL, c.cfg.AppKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("realtime client: dial %s: %w", c.cfg.URL, err)
	}
	c.conn = conn

	c.log.Info("realtime: connected to %s", c.cfg.URL)

	go c.readLoop(conn)
	go c.pingLoop(conn)

	return nil
}

// Events возвращает канал входящих событий message-created.
// Канал закрывается при разрыве соединения или Close.
func (c *Client) Events() <-chan MessageEvent {
	return c.events
}

// Subscribe подписывает клиента на канал диалога
func (c *Client) Subscribe(conversationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	channel := c.channelName(conversationID)
	if _, ok := c.channels[channel]; ok {
		return nil
	}

	if err := c.writeFrame("subscribe", channel); err != nil {
		return fmt.Errorf("realtime client: subscribe %s: %w", channel, err)
	}

	c.channels[channel] = struct{}{}
	c.log.Info("realtime: subscribed to %s", channel)
	return nil
}

// Unsubscribe отписывает клиента от канала диалога.
// Ошибки канала глотаются: отписка best-effort, состояние подписок
// чистится в любом случае.
func (c *Client) Unsubscribe(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	channel := c.channelName(conversationID)
	if _, ok := c.channels[channel]; !ok {
		return
	}
	delete(c.channels, channel)

	if c.conn == nil {
		return
	}
	_ = c.writeFrame("unsubscribe", channel)
}

// Close закрывает соединение. Best-effort, повторные вызовы безопасны.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.done)

	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.conn.Close()
		c.conn = nil
	}
}

// readLoop читает кадры и доставляет события message-created подписчику
func (c *Client) readLoop(conn *websocket.Conn) {
	defer close(c.events)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				// Штатное закрытие
			default:
				c.log.Warn("realtime: read loop terminated: %v", err)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			c.log.Debug("realtime: skipping unparsable frame: %v", err)
			continue
		}

		c.handleFrame(&f)
	}
}

// handleFrame обрабатывает один кадр протокола
func (c *Client) handleFrame(f *frame) {
	switch f.Event {
	case eventConnectionEstablished, eventSubscriptionSucceeded, eventPong:
		c.log.Debug("realtime: protocol event %s", f.Event)
		return
	}

	if !isMessageCreated(f.Event) {
		c.log.Debug("realtime: ignoring event %s on %s", f.Event, f.Channel)
		return
	}

	if c.metrics != nil {
		c.metrics.RecordRealtimeEvent(f.Event)
	}

	var payload messagePayload
	if err := decodePayload(f.Data, &payload); err != nil {
		c.log.Warn("realtime: failed to decode %s payload on %s: %v", f.Event, f.Channel, err)
		return
	}

	conversationID := payload.ConversationID
	if conversationID == "" {
		conversationID = conversationIDFromChannel(f.Channel, c.cfg.ChannelPrefix)
	}

	event := MessageEvent{
		ConversationID: conversationID,
		Message: &domain.Message{
			ID:             payload.ID,
			ConversationID: conversationID,
			SenderID:       payload.SenderID,
			Body:           payload.Body,
			CreatedAt:      payload.CreatedAt,
		},
	}

	select {
	case c.events <- event:
	case <-c.done:
	}
}

// pingLoop поддерживает соединение живым
func (c *Client) pingLoop(conn *websocket.Conn) {
	interval := c.cfg.PingInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			err := conn.WriteMessage(websocket.PingMessage, nil)
			c.mu.Unlock()
			if err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// writeFrame отправляет служебный кадр. Вызывается под c.mu.
func (c *Client) writeFrame(event, channel string) error {
	return c.conn.WriteJSON(frame{
		Event: event,
		Data:  json.RawMessage(fmt.Sprintf(`{"channel":%q}`, channel)),
	})
}

// channelName возвращает имя канала диалога
func (c *Client) channelName(conversationID string) string {
	return fmt.Sprintf("%s.%s", c.cfg.ChannelPrefix, conversationID)
}
