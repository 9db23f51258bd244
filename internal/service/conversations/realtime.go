package conversations

import "context"

// Run сводит real-time события в кеш диалогов до отмены контекста
// или закрытия канала событий. Запускается отдельной горутиной из main.
//
// Событие для диалога без записи в кеше создает одноэлементную страницу;
// последующие события дописываются в порядке получения. Дубли по id
// (повторная доставка, гонка с выборкой страницы) игнорируются.
func (s *Service) Run(ctx context.Context) {
	if s.realtime == nil {
		return
	}

	s.logger.Info("conversations: real-time merge loop started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("conversations: real-time merge loop stopped: %v", ctx.Err())
			return

		case event, ok := <-s.realtime.Events():
			if !ok {
				s.logger.Warn("conversations: real-time event stream closed")
				return
			}

			if event.Message == nil || event.ConversationID == "" {
				s.logger.Debug("conversations: skipping malformed real-time event")
				continue
			}

			if appended := s.convCache.Append(event.ConversationID, event.Message); !appended {
				s.logger.Debug("conversations: duplicate message %s on conversation=%s",
					event.Message.ID, event.ConversationID)
				continue
			}

			s.logger.Debug("conversations: merged message %s into conversation=%s",
				event.Message.ID, event.ConversationID)
		}
	}
}
