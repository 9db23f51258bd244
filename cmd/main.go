package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookMeetingHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/book_meeting"
	cancelMeetingHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/cancel_meeting"
	createJobOfferHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/create_job_offer"
	deleteJobOfferHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/delete_job_offer"
	getMeetingSlotsHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/get_meeting_slots"
	getMessagesHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/get_messages"
	getTicketOrderHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/get_ticket_order"
	listConversationsHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/list_conversations"
	listJobOffersHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/list_job_offers"
	listMeetingsHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/list_meetings"
	purchaseTicketHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/purchase_ticket"
	releaseConversationHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/release_conversation"
	respondMeetingHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/respond_meeting"
	sendMessageHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/send_message"
	updateJobOfferHandler "github.com/m04kA/EVP-GatewayService/internal/api/handlers/update_job_offer"
	"github.com/m04kA/EVP-GatewayService/internal/api/middleware"
	"github.com/m04kA/EVP-GatewayService/internal/config"
	"github.com/m04kA/EVP-GatewayService/internal/infra/cache/convcache"
	"github.com/m04kA/EVP-GatewayService/internal/infra/cache/slotcache"
	platformClient "github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	realtimeClient "github.com/m04kA/EVP-GatewayService/internal/integrations/realtime"
	conversationsService "github.com/m04kA/EVP-GatewayService/internal/service/conversations"
	joboffersService "github.com/m04kA/EVP-GatewayService/internal/service/joboffers"
	meetingsService "github.com/m04kA/EVP-GatewayService/internal/service/meetings"
	ticketsService "github.com/m04kA/EVP-GatewayService/internal/service/tickets"
	bookMeetingUC "github.com/m04kA/EVP-GatewayService/internal/usecase/book_meeting"
	getMeetingSlotsUC "github.com/m04kA/EVP-GatewayService/internal/usecase/get_meeting_slots"
	"github.com/m04kA/EVP-GatewayService/pkg/httpmetrics"
	"github.com/m04kA/EVP-GatewayService/pkg/logger"
	"github.com/m04kA/EVP-GatewayService/pkg/metrics"
)

// slotCacheTTL время жизни кеша занятых слотов.
// Короткий TTL: брони других клиентов платформы должны быстро попадать
// в сетку доступности.
const slotCacheTTL = 30 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EVP-GatewayService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var upstreamRecorder httpmetrics.Recorder

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		upstreamRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента REST API платформы
	platform := platformClient.NewClient(
		cfg.PlatformAPI.URL,
		cfg.PlatformAPI.Token,
		time.Duration(cfg.PlatformAPI.Timeout)*time.Second,
		log,
		upstreamRecorder,
	)
	log.Info("Platform API client initialized (url=%s timeout=%ds)",
		cfg.PlatformAPI.URL, cfg.PlatformAPI.Timeout)

	// Инициализируем кеши
	slotCache := slotcache.New(slotCacheTTL)
	convCache := convcache.New()

	// Инициализируем real-time клиента (если включен)
	var rt *realtimeClient.Client
	var rtForConversations conversationsService.RealtimeClient

	if cfg.Realtime.Enabled {
		var rtMetrics realtimeClient.MetricsRecorder
		if cfg.Metrics.Enabled {
			rtMetrics = metricsCollector
		}

		rt = realtimeClient.NewClient(realtimeClient.Config{
			URL:           cfg.Realtime.URL,
			AppKey:        cfg.Realtime.AppKey,
			ChannelPrefix: cfg.Realtime.ChannelPrefix,
			PingInterval:  time.Duration(cfg.Realtime.PingInterval) * time.Second,
		}, log, rtMetrics)

		if err := rt.Connect(context.Background()); err != nil {
			log.Fatal("Failed to connect to realtime channel: %v", err)
		}
		rtForConversations = rt
		log.Info("Realtime client connected (url=%s)", cfg.Realtime.URL)
	} else {
		log.Info("Realtime channel disabled")
	}

	// Инициализируем сервисы
	meetingsSvc := meetingsService.NewService(platform, slotCache, log)
	conversationsSvc := conversationsService.NewService(platform, convCache, rtForConversations, log)
	joboffersSvc := joboffersService.NewService(platform, log)
	ticketsSvc := ticketsService.NewService(platform, log)

	// Запускаем слияние real-time событий в кеш диалогов
	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()

	if cfg.Realtime.Enabled {
		go conversationsSvc.Run(runCtx)
		log.Info("Realtime merge loop started")
	}

	// Инициализируем use cases
	bookMeetingUseCase := bookMeetingUC.NewUseCase(platform, slotCache, log)
	getMeetingSlotsUseCase := getMeetingSlotsUC.NewUseCase(platform, slotCache, log)

	// Инициализируем handlers
	bookMeeting := bookMeetingHandler.NewHandler(bookMeetingUseCase, log)
	getMeetingSlots := getMeetingSlotsHandler.NewHandler(getMeetingSlotsUseCase, log)
	listMeetings := listMeetingsHandler.NewHandler(meetingsSvc, log)
	respondMeeting := respondMeetingHandler.NewHandler(meetingsSvc, log)
	cancelMeeting := cancelMeetingHandler.NewHandler(meetingsSvc, log)
	listConversations := listConversationsHandler.NewHandler(conversationsSvc, log)
	getMessages := getMessagesHandler.NewHandler(conversationsSvc, log)
	sendMessage := sendMessageHandler.NewHandler(conversationsSvc, log)
	releaseConversation := releaseConversationHandler.NewHandler(conversationsSvc, log)
	listJobOffers := listJobOffersHandler.NewHandler(joboffersSvc, log)
	createJobOffer := createJobOfferHandler.NewHandler(joboffersSvc, log)
	updateJobOffer := updateJobOfferHandler.NewHandler(joboffersSvc, log)
	deleteJobOffer := deleteJobOfferHandler.NewHandler(joboffersSvc, log)
	purchaseTicket := purchaseTicketHandler.NewHandler(ticketsSvc, log)
	getTicketOrder := getTicketOrderHandler.NewHandler(ticketsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вакансии компаний видны всем посетителям события
	api.HandleFunc("/companies/{companyId}/job-offers", listJobOffers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	// Сетка доступности на трехдневное окно
	protected.HandleFunc("/meeting-slots", getMeetingSlots.Handle).Methods(http.MethodGet)

	// Бронирование встречи
	protected.HandleFunc("/meetings", bookMeeting.Handle).Methods(http.MethodPost)

	// Встречи пользователя
	protected.HandleFunc("/users/{userId}/meetings", listMeetings.Handle).Methods(http.MethodGet)

	// Ответ на приглашение
	protected.HandleFunc("/meetings/{meetingId}/respond", respondMeeting.Handle).Methods(http.MethodPatch)

	// Отмена встречи
	protected.HandleFunc("/meetings/{meetingId}/cancel", cancelMeeting.Handle).Methods(http.MethodPatch)

	// --- Диалоги ---
	// Диалоги пользователя
	protected.HandleFunc("/users/{userId}/conversations", listConversations.Handle).Methods(http.MethodGet)

	// Сообщения диалога
	protected.HandleFunc("/conversations/{conversationId}/messages", getMessages.Handle).Methods(http.MethodGet)

	// Отправка сообщения
	protected.HandleFunc("/conversations/{conversationId}/messages", sendMessage.Handle).Methods(http.MethodPost)

	// Выгрузка диалога (отписка от real-time канала)
	protected.HandleFunc("/conversations/{conversationId}/release", releaseConversation.Handle).Methods(http.MethodPost)

	// --- Вакансии (для представителей компаний) ---
	protected.HandleFunc("/companies/{companyId}/job-offers", createJobOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/job-offers/{offerId}", updateJobOffer.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{companyId}/job-offers/{offerId}", deleteJobOffer.Handle).Methods(http.MethodDelete)

	// --- Билеты ---
	protected.HandleFunc("/ticket-orders", purchaseTicket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ticket-orders/{orderId}", getTicketOrder.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем слияние real-time событий и закрываем соединение
	stopRun()
	if rt != nil {
		rt.Close()
		log.Info("Realtime client closed")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
