package listeners

import (
	"context"
	"fmt"

	"employee-portal/internal/events"
	"employee-portal/pkg/eventbus"
	"employee-portal/pkg/telegram"

	"go.uber.org/zap"
)

// NotificationListener шлёт уведомления о кадровых изменениях в служебный
// Telegram-чат. Если бот не настроен, события просто логируются.
type NotificationListener struct {
	telegramService telegram.ServiceInterface
	chatID          int64
	logger          *zap.Logger
}

func NewNotificationListener(
	telegramService telegram.ServiceInterface,
	chatID int64,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		telegramService: telegramService,
		chatID:          chatID,
		logger:          logger,
	}
}

// Subscribe регистрирует обработчики на шине.
func (l *NotificationListener) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(events.EmployeeCreatedName, l.handleEmployeeCreated)
	bus.Subscribe(events.EmployeeUpdatedName, l.handleEmployeeUpdated)
	bus.Subscribe(events.EmployeeDeletedName, l.handleEmployeeDeleted)
}

func (l *NotificationListener) notify(ctx context.Context, text string) error {
	if l.telegramService == nil || l.chatID == 0 {
		l.logger.Debug("Уведомление не отправлено: Telegram не настроен", zap.String("text", text))
		return nil
	}
	return l.telegramService.SendMessage(ctx, l.chatID, text)
}

func (l *NotificationListener) handleEmployeeCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EmployeeCreatedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	l.logger.Info("Событие: сотрудник создан",
		zap.Uint64("id", e.Employee.ID),
		zap.Uint64("actorID", e.ActorID),
	)
	return l.notify(ctx, fmt.Sprintf(
		"👤 Новый сотрудник: <b>%s</b> (%s, %s)",
		e.Employee.FullName(), e.Employee.Department, e.Employee.Role,
	))
}

func (l *NotificationListener) handleEmployeeUpdated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EmployeeUpdatedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	l.logger.Info("Событие: данные сотрудника обновлены",
		zap.Uint64("id", e.Employee.ID),
		zap.Uint64("actorID", e.ActorID),
	)
	return l.notify(ctx, fmt.Sprintf(
		"✏️ Обновлены данные сотрудника <b>%s</b>",
		e.Employee.FullName(),
	))
}

func (l *NotificationListener) handleEmployeeDeleted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EmployeeDeletedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	l.logger.Info("Событие: сотрудник удалён",
		zap.Uint64("id", e.EmployeeID),
		zap.Uint64("actorID", e.ActorID),
	)
	return l.notify(ctx, fmt.Sprintf(
		"🗑 Запись сотрудника <b>%s</b> удалена",
		e.FullName,
	))
}
