package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameGiftsSent          = "gifts_sent_total"
	MetricNameNotificationsSent  = "notifications_sent_total"
	MetricNameMediaUploads       = "media_uploads_total"
	MetricNameChatMessagesSent   = "chat_messages_sent_total"
	MetricNameSSEClientsActive   = "sse_clients_active"
	MetricNameAdminLoginFailures = "admin_login_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextGiftsSent          = "Total number of gifts sent to players"
	HelpTextNotificationsSent  = "Total number of notification rows fanned out"
	HelpTextMediaUploads       = "Total number of media files stored"
	HelpTextChatMessagesSent   = "Total number of support chat messages"
	HelpTextSSEClientsActive   = "Current number of connected SSE dashboard clients"
	HelpTextAdminLoginFailures = "Total number of rejected admin logins"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelGiftType = "gift_type"
	LabelItemType = "item_type"
	LabelSender   = "sender"
	LabelReason   = "reason"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
