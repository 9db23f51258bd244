package httpmetrics

import (
	"net/http"
	"time"
)

// Recorder интерфейс для записи метрик исходящих запросов.
// Реализуется pkg/metrics.Metrics.
type Recorder interface {
	RecordUpstreamRequest(target, method string, status int, duration time.Duration)
}

// RoundTripper обертка над http.RoundTripper с записью метрик
type RoundTripper struct {
	next     http.RoundTripper
	recorder Recorder
	target   string
}

// Wrap оборачивает http.Client записью метрик исходящих запросов.
// target - логическое имя внешнего сервиса для лейбла метрики.
func Wrap(client *http.Client, recorder Recorder, target string) *http.Client {
	if recorder == nil {
		return client
	}

	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	wrapped := *client
	wrapped.Transport = &RoundTripper{
		next:     next,
		recorder: recorder,
		target:   target,
	}
	return &wrapped
}

// RoundTrip выполняет запрос и записывает метрику.
// Сетевые ошибки фиксируются со статусом 0.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.next.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	rt.recorder.RecordUpstreamRequest(rt.target, req.Method, status, time.Since(start))

	return resp, err
}
