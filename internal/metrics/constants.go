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

// Casino metric names
const (
	MetricNameBetsPlaced     = "casino_bets_placed_total"
	MetricNameBetsRejected   = "casino_bets_rejected_total"
	MetricNameChipsWagered   = "casino_chips_wagered_total"
	MetricNameChipsPaidOut   = "casino_chips_paid_out_total"
	MetricNameExchanges      = "casino_exchanges_total"
	MetricNameExchangeAmount = "casino_exchange_currency_total"
	MetricNameExchangeFees   = "casino_exchange_fees_total"
)

// Inventory metric names
const (
	MetricNameItemsBought = "items_bought_total"
	MetricNameItemsUsed   = "items_used_total"
)

// Flavor metric names
const (
	MetricNameFlavorTexts = "flavor_texts_total"
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

// Casino metric help text
const (
	HelpTextBetsPlaced     = "Total number of bets accepted"
	HelpTextBetsRejected   = "Total number of bets rejected for insufficient chips"
	HelpTextChipsWagered   = "Total chips debited by accepted bets"
	HelpTextChipsPaidOut   = "Total chips credited by winning results"
	HelpTextExchanges      = "Total chip exchanges by outcome"
	HelpTextExchangeAmount = "Total currency credited by chip exchanges"
	HelpTextExchangeFees   = "Total currency withheld as exchange fees"
)

// Inventory metric help text
const (
	HelpTextItemsBought = "Total number of items bought"
	HelpTextItemsUsed   = "Total number of items used"
)

// Flavor metric help text
const (
	HelpTextFlavorTexts = "Total flavor texts generated by source"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelGame    = "game"
	LabelItem    = "item"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// Label values
const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient"
	OutcomeCompensated  = "compensated"
	OutcomeError        = "error"

	SourceRemote   = "remote"
	SourceFallback = "fallback"

	// UnmatchedRoute labels requests that matched no route
	UnmatchedRoute = "unmatched"
)
