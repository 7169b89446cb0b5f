package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels.
const (
	OpSave     = "save"
	OpFindByID = "find_by_id"
	OpSearch   = "search"
)

// Store holds the Prometheus collectors for document store operations.
// A nil *Store is valid and records nothing.
type Store struct {
	operations    *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	searchResults prometheus.Histogram
	documents     prometheus.Gauge
}

// NewStore creates the store collectors and registers them on reg.
// Collectors already registered on reg by an earlier NewStore are reused, so
// several stores may report into one registry.
func NewStore(reg prometheus.Registerer) (*Store, error) {
	s := Store{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "docstore",
				Name:      "operations_total",
				Help:      "Total number of document store operations",
			},
			[]string{"op"},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "docstore",
				Name:      "lookups_total",
				Help:      "FindByID results by outcome",
			},
			[]string{"result"}, // "hit" / "miss"
		),
		searchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "docstore",
				Name:      "search_results",
				Help:      "Number of documents returned per search",
				Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
			},
		),
		documents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "docstore",
				Name:      "documents",
				Help:      "Number of stored documents",
			},
		),
	}

	var err error
	if s.operations, err = register(reg, s.operations); err != nil {
		return nil, err
	}
	if s.lookups, err = register(reg, s.lookups); err != nil {
		return nil, err
	}
	if s.searchResults, err = register(reg, s.searchResults); err != nil {
		return nil, err
	}
	if s.documents, err = register(reg, s.documents); err != nil {
		return nil, err
	}
	return &s, nil
}

// register returns the collector registered on reg: c itself, or the
// equivalent collector that was already there.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("register store metrics: %w", err)
}

// ObserveSave counts a save; created marks a new document.
func (s *Store) ObserveSave(created bool) {
	if s == nil {
		return
	}
	s.operations.WithLabelValues(OpSave).Inc()
	if created {
		s.documents.Inc()
	}
}

// ObserveLookup counts a FindByID call.
func (s *Store) ObserveLookup(found bool) {
	if s == nil {
		return
	}
	s.operations.WithLabelValues(OpFindByID).Inc()
	result := "miss"
	if found {
		result = "hit"
	}
	s.lookups.WithLabelValues(result).Inc()
}

// ObserveSearch counts a search and records its result size.
func (s *Store) ObserveSearch(results int) {
	if s == nil {
		return
	}
	s.operations.WithLabelValues(OpSearch).Inc()
	s.searchResults.Observe(float64(results))
}
