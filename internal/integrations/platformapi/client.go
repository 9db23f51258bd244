package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/EVP-GatewayService/pkg/httpmetrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с REST API платформы
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы.
// recorder может быть nil, если метрики отключены.
func NewClient(baseURL, token string, timeout time.Duration, log Logger, recorder httpmetrics.Recorder) *Client {
	httpClient := &http.Client{Timeout: timeout}
	if recorder != nil {
		httpClient = httpmetrics.Wrap(httpClient, recorder, "platform_api")
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		log:        log,
	}
}

// doJSON выполняет запрос к платформе и декодирует JSON ответ в out (если out != nil).
// На ожидаемый статус возвращает nil; на остальные статусы возвращает *APIError
// с сообщением платформы (или ErrUnauthorized для 401/403).
//
// Idempotency-Key передается только для небезопасных операций создания.
func (c *Client) doJSON(ctx context.Context, method, path string, idempotencyKey string, body interface{}, out interface{}, expected int) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}

	if resp.StatusCode != expected {
		return c.upstreamError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}

// upstreamError строит *APIError из тела ответа платформы.
// Сообщение платформы сохраняется, чтобы показать его пользователю.
func (c *Client) upstreamError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err != nil || errResp.Message == "" {
		c.log.Warn("platformapi: status %d with unparsable error body: %s", resp.StatusCode, string(data))
		return &APIError{StatusCode: resp.StatusCode}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
}

// isStatus возвращает true, если err является *APIError с указанным статусом
func isStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == status
}
