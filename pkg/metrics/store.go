package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts key-value store operations per collection.
type StoreMetrics struct {
	reads   *prometheus.CounterVec
	misses  *prometheus.CounterVec
	writes  *prometheus.CounterVec
	deletes *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_reads_total",
		Help: "Key-value store reads.",
	}, []string{"collection"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_read_misses_total",
		Help: "Key-value store reads that found no usable value.",
	}, []string{"collection"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_writes_total",
		Help: "Key-value store writes.",
	}, []string{"collection"})
	deletes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_deletes_total",
		Help: "Key-value store deletes.",
	}, []string{"collection"})
	reg.MustRegister(reads, misses, writes, deletes)
	return &StoreMetrics{
		reads:   reads,
		misses:  misses,
		writes:  writes,
		deletes: deletes,
	}
}

// ObserveGet records a read and, when nothing usable was found, a miss.
func (s *StoreMetrics) ObserveGet(collection string, found bool) {
	if s == nil || s.reads == nil {
		return
	}
	s.reads.WithLabelValues(normalizeLabel(collection)).Inc()
	if !found {
		s.misses.WithLabelValues(normalizeLabel(collection)).Inc()
	}
}

// ObserveSet records a write.
func (s *StoreMetrics) ObserveSet(collection string) {
	if s == nil || s.writes == nil {
		return
	}
	s.writes.WithLabelValues(normalizeLabel(collection)).Inc()
}

// ObserveDelete records a delete.
func (s *StoreMetrics) ObserveDelete(collection string) {
	if s == nil || s.deletes == nil {
		return
	}
	s.deletes.WithLabelValues(normalizeLabel(collection)).Inc()
}

func normalizeLabel(collection string) string {
	if collection == "" {
		return "unknown"
	}
	return collection
}
