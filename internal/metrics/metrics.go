// Package metrics holds the Prometheus collectors for the web surface. Each
// Recorder owns its registry so tests and parallel apps never collide on the
// global one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "peptica"

// Feedback submission outcomes.
const (
	OutcomeAccepted    = "accepted"
	OutcomeRejected    = "rejected"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

type Recorder struct {
	registry        *prometheus.Registry
	pageRenders     *prometheus.CounterVec
	filterRequests  *prometheus.CounterVec
	emptyResults    *prometheus.CounterVec
	feedbackResults *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	recorder := &Recorder{
		registry: registry,
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Rendered HTML pages and partials by page name.",
		}, []string{"page"}),
		filterRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interaction_filter_requests_total",
			Help:      "Interaction filter evaluations by substance.",
		}, []string{"substance"}),
		emptyResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interaction_filter_empty_total",
			Help:      "Interaction filter evaluations that matched nothing.",
		}, []string{"substance"}),
		feedbackResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_submissions_total",
			Help:      "Feedback submissions by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		recorder.pageRenders,
		recorder.filterRequests,
		recorder.emptyResults,
		recorder.feedbackResults,
	)
	return recorder
}

func (recorder *Recorder) PageRendered(page string) {
	recorder.pageRenders.WithLabelValues(page).Inc()
}

// FilterEvaluated counts one interaction filter run and, when nothing
// matched, an empty result.
func (recorder *Recorder) FilterEvaluated(substance string, visible int) {
	recorder.filterRequests.WithLabelValues(substance).Inc()
	if visible == 0 {
		recorder.emptyResults.WithLabelValues(substance).Inc()
	}
}

func (recorder *Recorder) FeedbackSubmitted(outcome string) {
	recorder.feedbackResults.WithLabelValues(outcome).Inc()
}

func (recorder *Recorder) Registry() *prometheus.Registry {
	return recorder.registry
}

func (recorder *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{Registry: recorder.registry})
}
