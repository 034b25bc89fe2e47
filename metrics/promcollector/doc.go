// Package promcollector exports bitvec allocator activity as Prometheus
// metrics.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := promcollector.New(reg, "myapp")
//	bv := bitvec.New(bitvec.WithMetricsCollector(mc))
package promcollector
