package grpcx

import (
	"context"
	"log/slog"
	"net"
	"time"

	chatv1 "github.com/cwrk-planet/chat-service/proto/gen/chat/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthCheckMethod = "/grpc.health.v1.Health/Check"
	healthWatchMethod = "/grpc.health.v1.Health/Watch"

	// ServiceName — имя, под которым сервис отдаёт статус в grpc.health.v1
	ServiceName = "chat.v1.ChatService"
)

// Server — gRPC-листенер сервиса: chat.v1.ChatService и grpc.health.v1.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// api == nil — только health.
func NewServer(callTimeout time.Duration, api chatv1.ChatServiceServer) *Server {
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(callTimeout)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	if api != nil {
		chatv1.RegisterChatServiceServer(gs, api)
	}

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{grpc: gs, health: hs}
}

func (s *Server) Serve(lis net.Listener) error {
	slog.Info("grpc listen", "addr", lis.Addr().String())
	return s.grpc.Serve(lis)
}

// Readiness переключает статус сервиса по результату проверки зависимостей.
func (s *Server) Readiness(ctx context.Context, check func(context.Context) error) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := check(ctx); err != nil {
		slog.Warn("grpc readiness check failed", slog.Any("err", err))
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ServiceName, st)
}

// Stop: сначала NOT_SERVING для всех сервисов, потом GracefulStop.
// Если за ctx не успели — жёсткий Stop.
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("grpc graceful stop timed out")
		s.grpc.Stop()
	}
}
