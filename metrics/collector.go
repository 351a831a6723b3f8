// Package metrics exports dynarray usage statistics as Prometheus series.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/dynarray"
)

var (
	sizeDesc = prometheus.NewDesc(
		"dynarray_size",
		"The number of live elements in the array.",
		[]string{"array"},
		nil,
	)
	capacityDesc = prometheus.NewDesc(
		"dynarray_capacity",
		"The number of allocated slots in the array.",
		[]string{"array"},
		nil,
	)
	utilizationDesc = prometheus.NewDesc(
		"dynarray_utilization_ratio",
		"Live elements divided by allocated slots, 0 when nothing is allocated.",
		[]string{"array"},
		nil,
	)
	reallocationsDesc = prometheus.NewDesc(
		"dynarray_reallocations_total",
		"The number of times growth replaced the backing buffer.",
		[]string{"array"},
		nil,
	)
)

// Source is anything that can report a dynarray metrics snapshot.
// *dynarray.DynamicArray[T] satisfies it for every T.
type Source interface {
	Metrics() dynarray.Metrics
}

// Collector reads the snapshot of every tracked array at scrape time.
// Scrapes must not run concurrently with mutation of a tracked array.
type Collector struct {
	sources map[string]Source
}

// NewCollector returns a collector with no tracked arrays.
func NewCollector() *Collector {
	return &Collector{sources: make(map[string]Source)}
}

// Track registers src under name, replacing any source already using it.
func (c *Collector) Track(name string, src Source) {
	c.sources[name] = src
}

// Untrack stops reporting name.
func (c *Collector) Untrack(name string) {
	delete(c.sources, name)
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- sizeDesc
	descs <- capacityDesc
	descs <- utilizationDesc
	descs <- reallocationsDesc
}

func (c *Collector) Collect(m chan<- prometheus.Metric) {
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		snap := c.sources[name].Metrics()
		m <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(snap.Size), name)
		m <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(snap.Capacity), name)
		m <- prometheus.MustNewConstMetric(utilizationDesc, prometheus.GaugeValue, snap.Utilization, name)
		m <- prometheus.MustNewConstMetric(reallocationsDesc, prometheus.CounterValue, float64(snap.Reallocations), name)
	}
}
