package infra

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Image waterfall stages, used as label values.
const (
	StageBlob     = "blob"
	StagePrimary  = "primary_provider"
	StageFallback = "fallback_provider"
	StageDefault  = "static_default"
)

// Metrics holds the service counters. A fresh registry per instance keeps
// tests independent of global state.
type Metrics struct {
	Registry *prometheus.Registry

	SearchesTotal      prometheus.Counter
	ImageStageTotal    *prometheus.CounterVec
	ListingCacheTotal  *prometheus.CounterVec
	GeneratorFailTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paisalocal_searches_total",
			Help: "Unified search requests served.",
		}),
		ImageStageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paisalocal_image_resolution_stage_total",
			Help: "Image waterfall resolutions by winning stage.",
		}, []string{"stage"}),
		ListingCacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paisalocal_listing_cache_total",
			Help: "Remote listing cache lookups by result.",
		}, []string{"result"}),
		GeneratorFailTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paisalocal_generator_failures_total",
			Help: "Generative provider calls that failed or parsed to nothing.",
		}),
	}

	reg.MustRegister(m.SearchesTotal, m.ImageStageTotal, m.ListingCacheTotal, m.GeneratorFailTotal)
	return m
}
