package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_errors_total",
			Help: "Total number of logged warnings and errors by error type and level.",
		},
		[]string{"type", "level"},
	)
	RecommendationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillmatch_recommendation_duration_seconds",
			Help:    "Duration of building one page of recommendations in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
	)
	UpstreamRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "skillmatch_upstream_request_duration_seconds",
			Help:       "Duration of requests to external services.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
	RecommendedJobsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skillmatch_recommended_jobs_total",
			Help: "Total number of scored jobs returned to users.",
		},
	)
	SavedJobsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_saved_jobs_total",
			Help: "Total number of saved and unsaved jobs.",
		},
		[]string{"action"},
	)
	SavedJobMatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillmatch_saved_job_match_score",
			Help:    "Match percentage of jobs at the moment they are saved.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)
	ParsedResumesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_parsed_resumes_total",
			Help: "Total number of resume parsing attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RecommendationDuration)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(RecommendedJobsCounter)
	prometheus.MustRegister(SavedJobsCounter)
	prometheus.MustRegister(SavedJobMatchScore)
	prometheus.MustRegister(ParsedResumesCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), mux))
	}()
}
