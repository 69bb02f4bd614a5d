package utils

import (
	"context"
	"sync"
	"time"
)

// PingFunc checks a single dependency.
type PingFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every configured dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && (h.Redis == nil || *h.Redis)
}

// HealthMonitor performs periodic health checks and keeps the latest snapshot in memory.
type HealthMonitor struct {
	mongo    PingFunc
	redis    PingFunc
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor creates a monitor. redis may be nil when Redis is not configured.
func NewHealthMonitor(mongo, redis PingFunc, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{mongo: mongo, redis: redis, interval: interval}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start checks once immediately, then on every tick until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}

// Check pings every dependency and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongo(ctx) == nil,
		CheckedAt: time.Now(),
	}
	if m.redis != nil {
		ok := m.redis(ctx) == nil
		status.Redis = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}
