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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Simulation metric names
const (
	MetricNameHotdogsProduced    = "hotdogs_produced_total"
	MetricNameHotdogsSold        = "hotdogs_sold_total"
	MetricNameQueueRejections    = "queue_rejections_total"
	MetricNameMoneyEarned        = "money_earned_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameUpgradesPurchased  = "upgrades_purchased_total"
	MetricNameMilestonesReached  = "milestones_reached_total"
	MetricNamePrestigesCompleted = "prestiges_completed_total"
	MetricNameTickDuration       = "tick_duration_seconds"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextHotdogsProduced    = "Total number of hot dogs produced"
	HelpTextHotdogsSold        = "Total number of hot dogs sold"
	HelpTextQueueRejections    = "Total number of enqueue attempts rejected at capacity"
	HelpTextMoneyEarned        = "Total money earned from sales and milestone rewards"
	HelpTextMoneySpent         = "Total money spent on upgrades"
	HelpTextUpgradesPurchased  = "Total number of upgrade levels purchased"
	HelpTextMilestonesReached  = "Total number of milestones reached"
	HelpTextPrestigesCompleted = "Total number of completed prestiges"
	HelpTextTickDuration       = "Simulation tick processing time in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelReason   = "reason"
	LabelUpgrade  = "upgrade"
	LabelCategory = "category"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickDurationBuckets covers the expected tick cost range, from microseconds
// for an idle stand up to tens of milliseconds for a milestone cascade
var TickDurationBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
