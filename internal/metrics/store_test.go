package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(prometheus.NewRegistry())
	require.NoError(t, err)
	return s
}

func TestObserveSave(t *testing.T) {
	s := newTestStore(t)

	s.ObserveSave(true)
	s.ObserveSave(false)
	s.ObserveSave(true)

	assert.InDelta(t, 3, testutil.ToFloat64(s.operations.WithLabelValues(OpSave)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(s.documents), 0)
}

func TestObserveLookup(t *testing.T) {
	s := newTestStore(t)

	s.ObserveLookup(true)
	s.ObserveLookup(false)
	s.ObserveLookup(false)

	assert.InDelta(t, 3, testutil.ToFloat64(s.operations.WithLabelValues(OpFindByID)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(s.lookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(s.lookups.WithLabelValues("miss")), 0)
}

func TestObserveSearch(t *testing.T) {
	s := newTestStore(t)

	s.ObserveSearch(0)
	s.ObserveSearch(12)

	assert.InDelta(t, 2, testutil.ToFloat64(s.operations.WithLabelValues(OpSearch)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(s.searchResults))
}

func TestNilStoreIsNoop(t *testing.T) {
	var s *Store
	assert.NotPanics(t, func() {
		s.ObserveSave(true)
		s.ObserveLookup(false)
		s.ObserveSearch(3)
	})
}

func TestNewStore_SharedRegistryReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewStore(reg)
	require.NoError(t, err)
	second, err := NewStore(reg)
	require.NoError(t, err)

	first.ObserveSave(true)
	second.ObserveSave(true)

	assert.InDelta(t, 2, testutil.ToFloat64(second.operations.WithLabelValues(OpSave)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(first.documents), 0)
}

func TestNewStore_ConflictingCollectorFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "docstore",
		Name:      "operations_total",
		Help:      "Unrelated gauge with a clashing name",
	}))

	_, err := NewStore(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register store metrics")
}
