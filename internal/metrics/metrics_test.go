package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, TokenRefreshesTotal)
	assert.NotNil(t, TokenRefreshFailuresTotal)
	assert.NotNil(t, PublishStageDuration)
	assert.NotNil(t, PublishFailuresTotal)
	assert.NotNil(t, ListingsPublishedTotal)
	assert.NotNil(t, WebhookEventsTotal)
	assert.NotNil(t, WebhookInvalidSignaturesTotal)
	assert.NotNil(t, SyncRunsTotal)
	assert.NotNil(t, SyncDuration)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
}

func TestPublishFailuresCounter(t *testing.T) {
	PublishFailuresTotal.WithLabelValues("offer").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "bookmint_publish_failures_total" {
			found = mf
			break
		}
	}

	require.NotNil(t, found, "publish failures metric not gathered")
	assert.Equal(t, dto.MetricType_COUNTER, found.GetType())

	var offerCount float64
	for _, m := range found.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "stage" && l.GetValue() == "offer" {
				offerCount = m.GetCounter().GetValue()
			}
		}
	}
	assert.GreaterOrEqual(t, offerCount, 1.0)
}
