package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu             sync.Mutex
	requestCount   map[string]int64
	requestMillis  map[string]int64
	errorCount     map[string]int64
	upstreamCount  map[string]int64
	upstreamMillis map[string]int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests       map[string]int64 `json:"requests"`
	RequestMillis  map[string]int64 `json:"request_millis"`
	Errors         map[string]int64 `json:"errors"`
	UpstreamCalls  map[string]int64 `json:"upstream_calls"`
	UpstreamMillis map[string]int64 `json:"upstream_millis"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:   make(map[string]int64),
		requestMillis:  make(map[string]int64),
		errorCount:     make(map[string]int64),
		upstreamCount:  make(map[string]int64),
		upstreamMillis: make(map[string]int64),
	}
}

// RecordRequest counts a request and adds its duration to the total for
// path and method.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.requestMillis[path+"|"+method] += duration.Milliseconds()
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordUpstream counts one outbound call to the ticketing API. Status 0
// means the call failed before a response arrived.
func (m *Metrics) RecordUpstream(route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := route + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamCount[key]++
	m.upstreamMillis[route] += duration.Milliseconds()
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Requests:       copyCounts(m.requestCount),
		RequestMillis:  copyCounts(m.requestMillis),
		Errors:         copyCounts(m.errorCount),
		UpstreamCalls:  copyCounts(m.upstreamCount),
		UpstreamMillis: copyCounts(m.upstreamMillis),
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
