package metrics

import (
	"net/http"

	"github.com/cwrk-planet/chat-service/internal/presence"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chat"

// Metrics — счётчики сокет-слоя и гейджи эфемерного состояния.
type Metrics struct {
	reg *prometheus.Registry

	Connections   prometheus.Gauge
	Events        *prometheus.CounterVec // type, result
	MessagesSent  prometheus.Counter
	SlowConsumers prometheus.Counter
	Replaced      prometheus.Counter
}

// New регистрирует метрики в собственном реестре. stats может быть nil.
func New(stats func() presence.Stats) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_connections",
			Help:      "Active websocket connections.",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_events_total",
			Help:      "Inbound socket events by type and result.",
		}, []string{"type", "result"}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Chat messages committed and broadcast.",
		}),
		SlowConsumers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_slow_consumers_total",
			Help:      "Connections closed because their send buffer was full.",
		}),
		Replaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_replaced_total",
			Help:      "Connections replaced by a newer connection of the same user.",
		}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Connections, m.Events, m.MessagesSent, m.SlowConsumers, m.Replaced,
	)

	if stats != nil {
		gauge := func(name, help string, pick func(presence.Stats) int) prometheus.GaugeFunc {
			return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      name,
				Help:      help,
			}, func() float64 { return float64(pick(stats())) })
		}
		m.reg.MustRegister(
			gauge("online_users", "Users currently connected.", func(s presence.Stats) int { return s.Online }),
			gauge("typing_rooms", "Rooms with at least one typing user.", func(s presence.Stats) int { return s.TypingRooms }),
			gauge("voice_members", "Users in the voice room.", func(s presence.Stats) int { return s.Voice }),
			gauge("voice_speaking", "Voice members currently speaking.", func(s presence.Stats) int { return s.Speaking }),
		)
	}

	return m
}

func (m *Metrics) Event(typ, result string) {
	m.Events.WithLabelValues(typ, result).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
