package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	systemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "System-wide CPU usage percentage",
		},
		[]string{"service"},
	)

	systemMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_percent",
			Help: "System-wide memory usage percentage",
		},
		[]string{"service"},
	)

	goGoroutines = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "service_go_goroutines",
			Help: "Number of goroutines",
		},
		[]string{"service"},
	)

	goHeapAlloc = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "service_go_memstats_alloc_bytes",
			Help: "Number of heap bytes allocated and still in use",
		},
		[]string{"service"},
	)

	goHeapSys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "service_go_memstats_sys_bytes",
			Help: "Number of bytes obtained from system",
		},
		[]string{"service"},
	)
)

// UpdateSystemMetrics samples system and Go runtime metrics once
func UpdateSystemMetrics(serviceName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	goGoroutines.WithLabelValues(serviceName).Set(float64(runtime.NumGoroutine()))
	goHeapAlloc.WithLabelValues(serviceName).Set(float64(m.Alloc))
	goHeapSys.WithLabelValues(serviceName).Set(float64(m.Sys))

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		systemCPUUsage.WithLabelValues(serviceName).Set(percents[0])
	} else if err != nil {
		log.Debug().Err(err).Msg("Failed to sample CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.WithLabelValues(serviceName).Set(vm.UsedPercent)
	} else {
		log.Debug().Err(err).Msg("Failed to sample memory usage")
	}
}

// StartSystemMetricsCollection starts a goroutine to collect system metrics
func StartSystemMetricsCollection(serviceName string) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			UpdateSystemMetrics(serviceName)
		}
	}()
}
