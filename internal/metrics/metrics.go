package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	GiftsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiftsSent,
			Help: HelpTextGiftsSent,
		},
		[]string{LabelGiftType},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
	)

	MediaUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMediaUploads,
			Help: HelpTextMediaUploads,
		},
		[]string{LabelItemType},
	)

	ChatMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatMessagesSent,
			Help: HelpTextChatMessagesSent,
		},
		[]string{LabelSender},
	)

	SSEClientsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClientsActive,
			Help: HelpTextSSEClientsActive,
		},
	)

	AdminLoginFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminLoginFailures,
			Help: HelpTextAdminLoginFailures,
		},
		[]string{LabelReason},
	)
)

// RecordGiftSent increments the gift counter for a gift type.
func RecordGiftSent(giftType string) {
	GiftsSent.WithLabelValues(giftType).Inc()
}

// RecordNotificationsFanout adds the number of rows written by one broadcast.
func RecordNotificationsFanout(count int) {
	NotificationsSent.Add(float64(count))
}

// RecordMediaUpload increments the upload counter for an item type.
func RecordMediaUpload(itemType string) {
	MediaUploads.WithLabelValues(itemType).Inc()
}

// RecordChatMessage increments the chat message counter for a sender type.
func RecordChatMessage(sender string) {
	ChatMessagesSent.WithLabelValues(sender).Inc()
}

// RecordLoginFailure increments the rejected login counter.
func RecordLoginFailure(reason string) {
	AdminLoginFailures.WithLabelValues(reason).Inc()
}
