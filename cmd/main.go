package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwrk-planet/chat-service/config"
	"github.com/cwrk-planet/chat-service/internal/metrics"
	"github.com/cwrk-planet/chat-service/internal/postgres"
	"github.com/cwrk-planet/chat-service/internal/presence"
	"github.com/cwrk-planet/chat-service/internal/security"
	"github.com/cwrk-planet/chat-service/internal/service"
	grpcx "github.com/cwrk-planet/chat-service/internal/transport/grpc"
	httpx "github.com/cwrk-planet/chat-service/internal/transport/http"
	"github.com/cwrk-planet/chat-service/internal/transport/ws"
	"github.com/cwrk-planet/chat-service/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.ParseEnv(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting chat-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	// --- security ---
	pub, err := security.LoadRSAPublicKeyFromPEM(cfg.JWT.PublicKeyPath)
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	verifier := security.NewVerifier(pub, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ClockSkew)

	// --- repos ---
	userRepo := postgres.NewUserRepository(db.Pool)
	channelRepo := postgres.NewChannelRepository(db.Pool)
	overrideRepo := postgres.NewOverrideRepository(db.Pool)
	msgRepo := postgres.NewMessageRepository(db.Pool, postgres.PointsHook(cfg.Chat.PointsPerMsg))
	cosmeticsRepo := postgres.NewCosmeticsRepository(db.Pool)
	markerRepo := postgres.NewReadMarkerRepository(db.Pool)
	notifRepo := postgres.NewNotificationRepository(db.Pool)

	resolver := security.NewIdentityResolver(verifier, userRepo)

	// --- hub, presence, metrics ---
	hub := ws.NewHub()
	registry := presence.NewRegistry(hub)
	m := metrics.New(registry.Stats)

	// --- services ---
	permSvc := service.NewPermissionService(channelRepo, overrideRepo)
	roomSvc := service.NewRoomService(permSvc, hub, registry)
	chatSvc := service.NewChatService(service.ChatDeps{
		Perms:         permSvc,
		Users:         userRepo,
		Channels:      channelRepo,
		Messages:      msgRepo,
		Cosmetics:     cosmeticsRepo,
		Markers:       markerRepo,
		Notifications: notifRepo,
		Rooms:         hub,
		Publisher:     hub,
	}, cfg.Chat.ToChatConfig())
	voiceSvc := service.NewVoiceService(registry, hub)

	// --- WS server ---
	wsServer := ws.NewServer(hub, resolver, registry, roomSvc, chatSvc, voiceSvc, m,
		cfg.WS.ToOptions(cfg.HTTP.AllowedOrigins))

	// --- HTTP ---
	router := httpx.NewRouter(httpx.RouterDeps{
		Handler:        httpx.NewHandler(chatSvc, permSvc),
		Resolver:       resolver,
		WS:             wsServer.HandleWS,
		Metrics:        m.Handler(),
		DB:             db,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Timeout:        cfg.HTTP.RequestTimeout,
	})
	// WriteTimeout не ставим: он рвал бы долгоживущие ws-соединения
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// --- gRPC ---
	grpcSrv := grpcx.NewServer(cfg.GRPC.CallTimeout, grpcx.NewChatAPI(resolver, chatSvc, permSvc, registry))

	// --- run both servers ---
	errCh := make(chan error, 2)

	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr)
		if err != nil {
			errCh <- err
			return
		}
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	// readiness для grpc health по пингу БД
	probeCtx, stopProbe := context.WithCancel(ctx)
	defer stopProbe()
	go func() {
		t := time.NewTicker(15 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				grpcSrv.Readiness(probeCtx, db.Ping)
			}
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	stopProbe()
	grpcSrv.Stop(ctxShutdown)
	if err := httpSrv.Shutdown(ctxShutdown); err != nil {
		slog.Warn("http shutdown", slog.Any("err", err))
	}
	// Shutdown не трогает hijacked-соединения
	n := hub.CloseAll()
	slog.Info("stopped", "ws_closed", n)
}
