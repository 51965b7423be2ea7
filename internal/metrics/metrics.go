package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_engine_bookings_created_total",
		Help: "Reservas criadas (agendadas e avulsas).",
	})

	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_engine_slot_conflicts_total",
		Help: "Tentativas de reserva rejeitadas por conflito de horário.",
	})

	ScrubbedDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_engine_scrubbed_duplicates_total",
		Help: "Registros duplicados descartados na limpeza de leitura.",
	})

	ScrubbedInvalid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_engine_scrubbed_invalid_total",
		Help: "Registros malformados descartados na limpeza de leitura.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_engine_http_requests_total",
		Help: "Requisições HTTP por rota e status.",
	}, []string{"method", "path", "status"})
)

// Middleware conta requisições por rota registrada (FullPath evita
// explosão de cardinalidade com parâmetros de URL).
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
