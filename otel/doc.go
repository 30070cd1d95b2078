// Package otel provides OpenTelemetry integration for charon collector metrics.
//
// # Overview
//
// This package implements the charon.MetricsCollector interface using
// OpenTelemetry, enabling observability into collection-pass frequency,
// duration, and yield without coupling the core module to any particular
// metrics backend.
//
// The package is a separate module so applications that don't need metrics
// don't pay for the OTEL dependency tree. charon's core depends only on the
// MetricsCollector interface and a NoOpMetricsCollector default.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/charon"
//	    charonotel "github.com/agilira/charon/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	mc, err := charonotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gc, err := charon.NewWithConfig[Node](charon.Config{
//	    MetricsCollector: mc,
//	})
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":2112", nil))
//
// # Metrics Exposed
//
// Histogram:
//   - charon_collection_duration_ns: duration of each Collect() pass
//
// Counters:
//   - charon_objects_scanned_total: objects visited during mark phases
//   - charon_objects_freed_total: objects swept
//   - charon_attaches_new_total / charon_attaches_existing_total
//   - charon_detaches_found_total / charon_detaches_missing_total
//
// # Configuration
//
// Custom meter name, useful for distinguishing multiple collector instances:
//
//	collector, err := charonotel.NewOTelMetricsCollector(
//	    provider,
//	    charonotel.WithMeterName("myapp_object_graph"),
//	)
//
// # Architecture
//
//	┌────────────────────────────────────┐
//	│     charon (Core Module)           │
//	│  • No OTEL dependencies            │
//	│  • MetricsCollector interface      │
//	│  • NoOpMetricsCollector (default)  │
//	└──────────────┬─────────────────────┘
//	               │ implements
//	               ▼
//	┌────────────────────────────────────┐
//	│    charon/otel (This Package)      │
//	│  • OTelMetricsCollector            │
//	│  • Histogram + Counters            │
//	└──────────────┬─────────────────────┘
//	               │ exports to
//	               ▼
//	          OTEL MeterProvider
//	               │
//	     ┌─────────┴──────┬────────┐
//	     ▼                ▼        ▼
//	Prometheus        Jaeger   DataDog
//
// # Thread Safety
//
// All methods are thread-safe and use lock-free OTEL instruments. The core
// Collector calls these methods while holding its own mutex, so
// RecordCollection/RecordAttach/RecordDetach must never call back into the
// Collector that owns them.
//
// # License
//
// Same as the charon core (see LICENSE in the main repository).
package otel
