package http

import (
	"context"
	"net/http"
	"time"

	httpmw "github.com/cwrk-planet/chat-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDeps struct {
	Handler        *Handler
	Resolver       httpmw.IdentityResolver
	WS             http.HandlerFunc
	Metrics        http.Handler
	DB             Pinger // nil — /readyz всегда ok
	AllowedOrigins []string
	Timeout        time.Duration
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}
	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(httpmw.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.Logging)
	r.Use(middlewareChi.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", httpmw.HeaderRequestID},
		ExposedHeaders:   []string{httpmw.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// WS endpoint (токен в query, без таймаута)
	r.Get("/ws", d.WS)

	r.Group(func(pr chi.Router) {
		pr.Use(httpmw.Auth(d.Resolver))
		pr.Use(middlewareChi.Timeout(d.Timeout))

		pr.Get("/channels", d.Handler.ListChannels)
		pr.Get("/channels/{slug}/messages", d.Handler.GetHistory)
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.DB != nil {
			if err := d.DB.Ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "db unavailable"})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	return r
}
