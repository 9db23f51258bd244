package get_meeting_slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
)

// UseCase use case получения сетки слотов.
// Возвращает трехдневное окно расписания и фиксированную сетку
// 30-минутных слотов с признаком доступности для обоих участников.
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

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMeetingSlots: user=%d, counterpart=%d", req.UserID, req.CounterpartID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMeetingSlots: validation failed: %v", err)
		return nil, err
	}

	// Занятые слоты обоих участников - два независимых чтения
	var userSlots, counterpartSlots []*domain.BookedSlot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userSlots, err = uc.bookedSlots(gctx, req.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		counterpartSlots, err = uc.bookedSlots(gctx, req.CounterpartID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetMeetingSlots: failed to fetch booked slots: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	booked := domain.UnionIntervals(
		domain.SlotIntervals(userSlots),
		domain.SlotIntervals(counterpartSlots),
	)

	// Сетка строится на окне "сегодня + 2 дня" на момент вызова
	window := domain.ThreeDayRange(uc.timeProvider.Now())
	grid := domain.TimeSlots()

	resp := &Response{Days: make([]DayView, 0, len(window))}

	for _, day := range window {
		view := DayView{
			Date:    day.Date,
			Display: day.Display,
			Slots:   make([]SlotView, 0, len(grid)),
		}

		for _, slot := range grid {
			interval, err := domain.SlotInterval(day, slot)
			if err != nil {
				// Сетка фиксированная, ошибок формата тут не бывает
				continue
			}

			view.Slots = append(view.Slots, SlotView{
				Start:     slot.Start.String(),
				End:       slot.End.String(),
				Display:   slot.Display,
				Available: domain.IsAvailable(interval, booked),
			})
		}

		resp.Days = append(resp.Days, view)
	}

	uc.logger.Info("GetMeetingSlots: built %d days x %d slots for user=%d, counterpart=%d",
		len(resp.Days), len(grid), req.UserID, req.CounterpartID)

	return resp, nil
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

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CounterpartID <= 0 {
		return fmt.Errorf("%w: counterpartID must be positive", ErrInvalidInput)
	}
	if req.UserID == req.CounterpartID {
		return fmt.Errorf("%w: user and counterpart must differ", ErrInvalidInput)
	}
	return nil
}
