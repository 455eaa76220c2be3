package main

import (
	"context"
	"time"

	"github.com/astralabs/astra-advisor-go/internal/logger"
	"github.com/astralabs/astra-advisor-go/internal/metrics"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

// storeMetricsInterval is how often the store size gauges refresh.
const storeMetricsInterval = 1 * time.Minute

// updateStoreMetrics periodically publishes the in-memory store sizes
// to Prometheus until the context is canceled.
func updateStoreMetrics(ctx context.Context, store *storage.MemoryStore, m *metrics.Metrics, log *logger.Logger) {
	ticker := time.NewTicker(storeMetricsInterval)
	defer ticker.Stop()

	update := func() {
		conversations, profiles, messages := store.Counts()
		m.UpdateStoreSizes(conversations, profiles, messages)
	}
	update()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Store metrics updater stopped")
			return
		case <-ticker.C:
			update()
		}
	}
}
