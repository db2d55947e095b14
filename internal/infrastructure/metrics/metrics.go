// Package metrics expone contadores Prometheus de búsqueda, selección, folios y HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
)

var _ usecase.Observer = (*Metrics)(nil)

// Metrics agrupa los colectores sobre un registro propio (no el global) para poder probarlos.
type Metrics struct {
	registry *prometheus.Registry

	searches          *prometheus.CounterVec
	conflicts         *prometheus.CounterVec
	resguardos        prometheus.Counter
	folios            *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	catalogRecords    prometheus.Gauge
	catalogLoadErrors prometheus.Counter
}

// New registra los colectores bajo el namespace indicado.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_operations_total",
			Help:      "Operaciones de búsqueda por tipo (classify, suggest, results)",
		}, []string{"op"}),
		conflicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_conflicts_total",
			Help:      "Rechazos de selección por tipo de conflicto",
		}, []string{"kind"}),
		resguardos: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resguardos_created_total",
			Help:      "Resguardos persistidos",
		}),
		folios: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "folios_allocated_total",
			Help:      "Folios asignados por clave de contador",
		}, []string{"key"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de peticiones HTTP",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"method", "route", "status"}),
		catalogRecords: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_records",
			Help:      "Muebles en la instantánea vigente",
		}),
		catalogLoadErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_load_errors_total",
			Help:      "Cargas de catálogo fallidas",
		}),
	}
}

// Registry registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) SearchPerformed(op string)     { m.searches.WithLabelValues(op).Inc() }
func (m *Metrics) SelectionConflict(kind string) { m.conflicts.WithLabelValues(kind).Inc() }
func (m *Metrics) ResguardoCreated()             { m.resguardos.Inc() }
func (m *Metrics) FolioAllocated(key string)     { m.folios.WithLabelValues(key).Inc() }
func (m *Metrics) CatalogLoaded(records int)     { m.catalogRecords.Set(float64(records)) }
func (m *Metrics) CatalogLoadFailed()            { m.catalogLoadErrors.Inc() }

// Handler handler HTTP de exposición (para montar con el adaptador de fiber).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware mide la latencia por ruta registrada (no por path crudo, para acotar cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.requestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
