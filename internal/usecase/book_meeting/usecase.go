package book_meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
)

// UseCase use case бронирования встречи.
//
// Последовательность:
//  1. Получить занятые слоты обоих участников (два независимых чтения,
//     выполняются конкурентно; кеш - сквозной).
//  2. Объединить списки интервалов.
//  3. Вычислить литеральные метки начала/конца по выбранному дню и слоту.
//  4. Проверить доступность интервала по объединенному списку.
//  5. Доступен - отправить создание встречи платформе; занят - отклонить
//     локально без сетевого вызова.
//
// Успешное создание инвалидирует кеш слотов обоих участников.
type UseCase struct {
	platform     PlatformClient
	slotCache    SlotCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(platform PlatformClient, slotCache SlotCache, logger Logger) *UseCase {
	return &UseCase{
		platform:     platform,
		slotCache:    slotCache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования встречи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookMeeting: organizer=%d, participant=%d, date=%s, time=%s",
		req.OrganizerID, req.ParticipantID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookMeeting: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата должна попадать в трехдневное окно расписания
	day, err := validateDateInWindow(req.Date, now)
	if err != nil {
		uc.logger.Warn("BookMeeting: date validation failed: %v", err)
		return nil, err
	}

	// 3. Время начала должно лежать на фиксированной сетке слотов
	slot, err := findGridSlot(req.StartTime.String())
	if err != nil {
		uc.logger.Warn("BookMeeting: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Вычисляем литеральный интервал встречи
	candidate, err := domain.SlotInterval(day, slot)
	if err != nil {
		uc.logger.Error("BookMeeting: failed to compute interval: %v", err)
		return nil, fmt.Errorf("%w: failed to compute interval: %v", ErrInternal, err)
	}

	// Инвариант start < end закрепляем на границе workflow,
	// предикат доступности его не проверяет
	if !candidate.IsValid() {
		uc.logger.Warn("BookMeeting: computed interval is invalid: %v..%v", candidate.Start, candidate.End)
		return nil, ErrInvalidInterval
	}

	// 5. Получаем занятые слоты обоих участников (независимые чтения)
	var organizerSlots, participantSlots []*domain.BookedSlot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		organizerSlots, err = uc.bookedSlots(gctx, req.OrganizerID)
		return err
	})
	g.Go(func() error {
		var err error
		participantSlots, err = uc.bookedSlots(gctx, req.ParticipantID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("BookMeeting: failed to fetch booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch booked slots: %w", ErrUpstream, err)
	}

	// 6. Объединяем интервалы и проверяем доступность
	booked := domain.UnionIntervals(
		domain.SlotIntervals(organizerSlots),
		domain.SlotIntervals(participantSlots),
	)

	if !domain.IsAvailable(candidate, booked) {
		uc.logger.Warn("BookMeeting: slot conflict for organizer=%d, participant=%d at %s %s",
			req.OrganizerID, req.ParticipantID, day.Date, req.StartTime)
		return nil, ErrSlotConflict
	}

	// 7. Слот свободен - создаем встречу на платформе
	meeting, err := uc.platform.CreateMeeting(ctx, &platformapi.CreateMeetingRequest{
		OrganizerID:   req.OrganizerID,
		ParticipantID: req.ParticipantID,
		Topic:         req.Topic,
		Location:      req.Location,
		StartTime:     candidate.Start,
		EndTime:       candidate.End,
	}, uuid.NewString())
	if err != nil {
		uc.logger.Error("BookMeeting: platform rejected meeting creation: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	// 8. Инвалидируем кеш слотов обоих участников, чтобы последующие
	// проверки видели новую бронь
	uc.slotCache.Invalidate(req.OrganizerID, req.ParticipantID)

	uc.logger.Info("BookMeeting: successfully created meeting id=%d", meeting.ID)

	return &Response{
		ID:            meeting.ID,
		OrganizerID:   meeting.OrganizerID,
		ParticipantID: meeting.ParticipantID,
		Topic:         meeting.Topic,
		Location:      meeting.Location,
		StartTime:     meeting.StartTime,
		EndTime:       meeting.EndTime,
		Status:        string(meeting.Status),
		CreatedAt:     meeting.CreatedAt,
	}, nil
}

// bookedSlots возвращает занятые слоты пользователя, сквозной кеш
func (uc *UseCase) bookedSlots(ctx context.Context, userID int64) ([]*domain.BookedSlot, error) {
	if slots, ok := uc.slotCache.Get(userID); ok {
		return slots, nil
	}

	slots, err := uc.platform.ListBookedSlots(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc.slotCache.Set(userID, slots)
	return slots, nil
}
