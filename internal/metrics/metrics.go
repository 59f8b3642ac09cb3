// Package metrics holds the Prometheus instrumentation for the lexicon.
// Collectors are registered on the default registry at init time and exposed
// by the server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup result label values.
const (
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultReplaced = "replaced"
)

var (
	// LookupsTotal counts GetWord calls by outcome.
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pronlex_lookups_total",
		Help: "Word lookups by result (hit, miss, replaced).",
	}, []string{"result"})

	// MissingWordsTotal counts spellings absent from both dictionaries.
	MissingWordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pronlex_missing_words_total",
		Help: "Lookups for spellings absent from both dictionaries.",
	})

	// LoadSeconds observes the duration of the one-time dictionary load.
	LoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pronlex_dictionary_load_seconds",
		Help:    "Wall-clock duration of dictionary allocation.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	// DictionaryWords reports the number of loaded words per class.
	DictionaryWords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pronlex_dictionary_words",
		Help: "Loaded word count by dictionary class (word, filler).",
	}, []string{"class"})
)
