package conversations

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/conversations/models"
)

// markReadConcurrency максимум одновременных запросов отметки о прочтении
const markReadConcurrency = 4

// Service сервис диалогов.
//
// Держит read-only кеш страниц сообщений по диалогам, сводит в него
// real-time события платформы и отмечает непрочитанные сообщения при
// каждой успешной выборке страницы.
type Service struct {
	platform  PlatformClient
	convCache ConversationCache
	realtime  RealtimeClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса диалогов.
// realtime может быть nil, если real-time канал отключен конфигурацией.
func NewService(platform PlatformClient, convCache ConversationCache, rt RealtimeClient, logger Logger) *Service {
	return &Service{
		platform:  platform,
		convCache: convCache,
		realtime:  rt,
		logger:    logger,
	}
}

// GetUserConversations получает диалоги пользователя
func (s *Service) GetUserConversations(ctx context.Context, userID int64) (*models.ConversationListResponse, error) {
	s.logger.Info("GetUserConversations: fetching conversations for user=%d", userID)

	conversations, err := s.platform.ListConversations(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserConversations: platform error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserConversations: successfully fetched %d conversations for user=%d",
		len(conversations), userID)
	return models.FromDomainConversationList(conversations), nil
}

// GetMessages получает страницу сообщений диалога.
//
// Выборка платформы сводится с кешем (real-time сообщения, успевшие
// прийти раньше ответа, не теряются), диалог подписывается на real-time
// канал, после чего все непрочитанные текущим пользователем сообщения
// отмечаются прочитанными.
func (s *Service) GetMessages(ctx context.Context, userID int64, conversationID, cursor string, limit int) (*models.MessagePageResponse, error) {
	s.logger.Info("GetMessages: conversation=%s, user=%d, cursor=%q", conversationID, userID, cursor)

	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversationID is required", ErrInvalidInput)
	}

	fetched, err := s.platform.ListMessages(ctx, conversationID, cursor, limit)
	if err != nil {
		if errors.Is(err, platformapi.ErrConversationNotFound) {
			s.logger.Warn("GetMessages: conversation %s not found", conversationID)
			return nil, ErrConversationNotFound
		}
		s.logger.Error("GetMessages: platform error for conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	page := s.convCache.Reconcile(conversationID, fetched)

	// Диалог активен - подписываемся на его real-time канал
	s.subscribe(conversationID)

	// Отметки о прочтении отправляются после каждой успешной выборки.
	// Неудавшиеся отметки не роняют выборку: квитанция останется
	// отсутствующей, и следующая выборка повторит попытку.
	if err := s.markUnread(ctx, userID, page); err != nil {
		s.logger.Error("GetMessages: failed to acknowledge messages in conversation=%s: %v",
			conversationID, err)
	}

	s.logger.Info("GetMessages: returning %d messages for conversation=%s", len(page.Messages), conversationID)
	return models.FromDomainMessagePage(page), nil
}

// SendMessage отправляет сообщение в диалог.
// Успешная отправка инвалидирует кеш диалога целиком: следующая выборка
// перечитает страницу с платформы (real-time событие о собственном
// сообщении при этом безвредно - слияние дедуплицирует по id).
func (s *Service) SendMessage(ctx context.Context, conversationID string, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("SendMessage: conversation=%s, user=%d", conversationID, req.UserID)

	if req.Body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}
	if len(req.Body) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: body exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	msg, err := s.platform.SendMessage(ctx, conversationID, &platformapi.SendMessageRequest{
		SenderID: req.UserID,
		Body:     req.Body,
	})
	if err != nil {
		if errors.Is(err, platformapi.ErrConversationNotFound) {
			s.logger.Warn("SendMessage: conversation %s not found", conversationID)
			return nil, ErrConversationNotFound
		}
		s.logger.Error("SendMessage: platform error for conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.convCache.Invalidate(conversationID)

	s.logger.Info("SendMessage: message %s sent to conversation=%s", msg.ID, conversationID)
	return models.FromDomainMessage(msg), nil
}

// ReleaseConversation выгружает диалог: отписка от real-time канала
// и сброс кеша. Вызывается, когда пользователь покидает диалог.
func (s *Service) ReleaseConversation(conversationID string) {
	s.logger.Info("ReleaseConversation: releasing conversation=%s", conversationID)

	if s.realtime != nil {
		s.realtime.Unsubscribe(conversationID)
	}
	s.convCache.Invalidate(conversationID)
}

// markUnread отмечает прочитанными все сообщения страницы, у которых нет
// квитанции текущего пользователя. Собственные сообщения пропускаются.
//
// Отметки отправляются конкурентно, но batch ожидается целиком, а ошибки
// агрегируются - молчаливой потери подтверждений нет.
func (s *Service) markUnread(ctx context.Context, userID int64, page *domain.MessagePage) error {
	unread := make([]*domain.Message, 0)
	for _, m := range page.Messages {
		if m.SenderID == userID {
			continue
		}
		if !m.ReadBy(userID) {
			unread = append(unread, m)
		}
	}

	if len(unread) == 0 {
		return nil
	}

	s.logger.Debug("markUnread: acknowledging %d messages in conversation=%s for user=%d",
		len(unread), page.ConversationID, userID)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(markReadConcurrency)

	errs := make([]error, len(unread))
	for i, m := range unread {
		i, m := i, m
		g.Go(func() error {
			if err := s.platform.MarkMessageRead(gctx, page.ConversationID, m.ID, userID); err != nil {
				errs[i] = fmt.Errorf("message %s: %w", m.ID, err)
			}
			return nil
		})
	}

	_ = g.Wait()
	return errors.Join(errs...)
}

// subscribe подписывает диалог на real-time канал.
// Ошибка подписки не фатальна: выборка сообщений важнее live-обновлений.
func (s *Service) subscribe(conversationID string) {
	if s.realtime == nil {
		return
	}
	if err := s.realtime.Subscribe(conversationID); err != nil {
		s.logger.Warn("subscribe: failed to subscribe conversation=%s: %v", conversationID, err)
	}
}
