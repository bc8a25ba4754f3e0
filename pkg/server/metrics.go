package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dreamweaver_stories_generated_total",
		Help: "Total number of stories generated successfully.",
	})
	storyFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamweaver_story_failures_total",
		Help: "Total number of failed story generations by reason.",
	}, []string{"reason"})
	storyGenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dreamweaver_story_generation_seconds",
		Help:    "Time spent waiting for the model to return a story.",
		Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 160},
	})
)
