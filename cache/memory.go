package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Pen-Clock/BodiaStore/metrics"
)

// Memory is the process-wide in-memory backend. Values are stored as JSON
// so hits and misses behave identically to the Redis backend. Entries live
// until a tag they carry is invalidated.
type Memory struct {
	mu      sync.Mutex
	entries map[string][]byte
	tagged  map[string]map[string]struct{} // tag -> keys carrying it
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]byte),
		tagged:  make(map[string]map[string]struct{}),
	}
}

func (m *Memory) GetOrCompute(ctx context.Context, key string, tags []string, dest interface{}, compute ComputeFunc) error {
	m.mu.Lock()
	data, ok := m.entries[key]
	m.mu.Unlock()

	if ok {
		metrics.CacheHits.WithLabelValues("memory").Inc()
		return json.Unmarshal(data, dest)
	}
	metrics.CacheMisses.WithLabelValues("memory").Inc()

	value, err := compute()
	if err != nil {
		return err
	}
	data, err = json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = data
	for _, tag := range tags {
		keys, ok := m.tagged[tag]
		if !ok {
			keys = make(map[string]struct{})
			m.tagged[tag] = keys
		}
		keys[key] = struct{}{}
	}
	m.mu.Unlock()

	return json.Unmarshal(data, dest)
}

func (m *Memory) Invalidate(ctx context.Context, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tag := range tags {
		for key := range m.tagged[tag] {
			delete(m.entries, key)
		}
		delete(m.tagged, tag)
	}
}
