package metrics

import "github.com/prometheus/client_golang/prometheus"

// PoolStats is a snapshot of database connection pool usage.
type PoolStats struct {
	Acquired      int32
	Idle          int32
	Total         int32
	Max           int32
	AcquireCount  int64
	EmptyAcquires int64
}

// PoolCollector exports PoolStats read on every scrape.
type PoolCollector struct {
	stats func() PoolStats

	conns        *prometheus.Desc
	maxConns     *prometheus.Desc
	acquires     *prometheus.Desc
	emptyAcquire *prometheus.Desc
}

// NewPoolCollector returns a collector that calls stats on each scrape.
func NewPoolCollector(stats func() PoolStats) *PoolCollector {
	return &PoolCollector{
		stats: stats,
		conns: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db_pool", "connections"),
			"Database pool connections by state.",
			[]string{"state"}, nil,
		),
		maxConns: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db_pool", "max_connections"),
			"Configured maximum pool size.",
			nil, nil,
		),
		acquires: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db_pool", "acquires_total"),
			"Connections acquired from the pool.",
			nil, nil,
		),
		emptyAcquire: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db_pool", "empty_acquires_total"),
			"Acquires that had to wait for a connection.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.conns
	ch <- c.maxConns
	ch <- c.acquires
	ch <- c.emptyAcquire
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Acquired), "acquired")
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Idle), "idle")
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Total), "total")
	ch <- prometheus.MustNewConstMetric(c.maxConns, prometheus.GaugeValue, float64(s.Max))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount))
	ch <- prometheus.MustNewConstMetric(c.emptyAcquire, prometheus.CounterValue, float64(s.EmptyAcquires))
}

// RegisterPool registers a PoolCollector with the default registry.
func RegisterPool(stats func() PoolStats) error {
	return prometheus.Register(NewPoolCollector(stats))
}
