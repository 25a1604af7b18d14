package populate

import (
	"runtime"
	"time"
)

// metrics snapshots wall time and heap usage at the start of a run so the
// final report can show elapsed time, throughput and memory growth.
type metrics struct {
	start     time.Time
	heapStart uint64
}

func beginMetrics() *metrics {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return &metrics{start: time.Now(), heapStart: ms.HeapAlloc}
}

func (m *metrics) elapsed() time.Duration {
	return time.Since(m.start)
}

// heapDeltaMB reports heap growth since the run started, floored at zero
// since a GC cycle can shrink the heap below its starting point.
func (m *metrics) heapDeltaMB() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc <= m.heapStart {
		return 0
	}
	return float64(ms.HeapAlloc-m.heapStart) / (1024 * 1024)
}

func (m *metrics) recordsPerSecond(records int64) float64 {
	secs := m.elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(records) / secs
}
