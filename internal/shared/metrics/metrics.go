package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported by the service.
var Registry = prometheus.NewRegistry()

var (
	assessmentsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assessments_submitted_total",
		Help: "Total assessments submitted",
	})
	roadmapsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmaps_generated_total",
		Help: "Total roadmaps generated, by recovery stage",
	}, []string{"stage"})
	unrecognizedInput = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_unrecognized_input_total",
		Help: "Answer fields that reached the engine with a value outside their domain",
	}, []string{"field"})
	buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roadmap_build_duration_ms",
		Help:    "Roadmap build duration in milliseconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})
	cacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_cache_requests_total",
		Help: "Roadmap cache lookups by result (hit, miss, error)",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		assessmentsSubmitted,
		roadmapsGenerated,
		unrecognizedInput,
		buildDuration,
		cacheRequests,
	)
}

// IncAssessmentsSubmitted increments the submission counter.
func IncAssessmentsSubmitted() {
	assessmentsSubmitted.Inc()
}

// IncRoadmapsGenerated counts one generated roadmap for stage. An empty
// stage is reported as "unset".
func IncRoadmapsGenerated(stage string) {
	if stage == "" {
		stage = "unset"
	}
	roadmapsGenerated.WithLabelValues(stage).Inc()
}

// IncUnrecognizedInput counts one answer field outside its enum domain.
func IncUnrecognizedInput(field string) {
	unrecognizedInput.WithLabelValues(field).Inc()
}

// ObserveBuildDurationMs records a roadmap build duration in milliseconds.
func ObserveBuildDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	buildDuration.Observe(value)
}

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// IncCacheRequest counts one cache lookup.
func IncCacheRequest(result string) {
	cacheRequests.WithLabelValues(result).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
