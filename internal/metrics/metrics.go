// Package metrics holds the prometheus collectors for the catalog service
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot and catalog metrics
var (
	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameSnapshotLoads,
			Help:      HelpTextSnapshotLoads,
		},
		[]string{LabelResult, LabelEncoding},
	)

	SnapshotLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricNameSnapshotLoadDuration,
			Help:      HelpTextSnapshotLoadDuration,
			Buckets:   LatencyBuckets,
		},
	)

	SnapshotBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameSnapshotBytes,
			Help:      HelpTextSnapshotBytes,
		},
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameCatalogEntries,
			Help:      HelpTextCatalogEntries,
		},
		[]string{LabelKind},
	)

	DuplicateIDs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameDuplicateIDs,
			Help:      HelpTextDuplicateIDs,
		},
		[]string{LabelKind},
	)
)

// Lookup metrics
var (
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameLookups,
			Help:      HelpTextLookups,
		},
		[]string{LabelOperation, LabelResult},
	)

	SlotConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameSlotConflicts,
			Help:      HelpTextSlotConflicts,
		},
	)
)

// Transport metrics
var (
	GRPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameGRPCRequests,
			Help:      HelpTextGRPCRequests,
		},
		[]string{LabelMethod, LabelCode},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricNameGRPCRequestDuration,
			Help:      HelpTextGRPCRequestDuration,
			Buckets:   LatencyBuckets,
		},
		[]string{LabelMethod},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequests,
			Help:      HelpTextHTTPRequests,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)
)
