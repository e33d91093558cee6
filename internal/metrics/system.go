package metrics

import (
	"context"
	"fmt"
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
			Name: "homeswerv_system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
		[]string{"core"},
	)

	systemMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "homeswerv_system_memory_usage_bytes",
			Help: "Current memory usage in bytes",
		},
		[]string{"type"},
	)

	goHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "homeswerv_go_heap_alloc_bytes",
			Help: "Heap memory usage in bytes",
		},
	)
)

// RunSystemCollector samples host and runtime gauges until ctx is done.
func RunSystemCollector(ctx context.Context, interval time.Duration) error {
	log.Info().Dur("interval", interval).Msg("System metrics collection started")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			collectSystemMetrics()
		}
	}
}

func collectSystemMetrics() {
	if percentages, err := cpu.Percent(0, true); err == nil {
		for i, p := range percentages {
			systemCPUUsage.WithLabelValues(fmt.Sprintf("cpu%d", i)).Set(p)
		}
	} else {
		log.Debug().Err(err).Msg("cpu sample failed")
	}

	if vmstat, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.WithLabelValues("total").Set(float64(vmstat.Total))
		systemMemoryUsage.WithLabelValues("available").Set(float64(vmstat.Available))
		systemMemoryUsage.WithLabelValues("used").Set(float64(vmstat.Used))
	} else {
		log.Debug().Err(err).Msg("memory sample failed")
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	goHeapAlloc.Set(float64(m.HeapAlloc))
}
