package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event — любое событие в системе.
type Event interface {
	Name() string
}

// Listener — обработчик события.
type Listener func(ctx context.Context, event Event) error

// Bus — внутрипроцессная шина событий. Обработчики вызываются
// асинхронно и не влияют на обработку запроса.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

// Subscribe подписывает обработчик на событие с указанным именем.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish вызывает всех подписчиков события. Каждый получает свой
// контекст с таймаутом, чтобы не плодить вечные горутины.
func (b *Bus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(ctx, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}
