package realtime

import "errors"

var (
	// ErrNotConnected возвращается при операции на незапущенном клиенте
	ErrNotConnected = errors.New("realtime client: not connected")

	// ErrAlreadyConnected возвращается при повторном Connect
	ErrAlreadyConnected = errors.New("realtime client: already connected")

	// ErrConnectionClosed возвращается, когда соединение уже закрыто
	ErrConnectionClosed = errors.New("realtime client: connection closed")
)
