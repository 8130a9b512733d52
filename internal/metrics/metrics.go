package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets are the request duration histogram buckets in seconds
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

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

// Casino Metrics
var (
	BetsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
		[]string{LabelGame},
	)

	BetsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsRejected,
			Help: HelpTextBetsRejected,
		},
		[]string{LabelGame},
	)

	ChipsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChipsWagered,
			Help: HelpTextChipsWagered,
		},
		[]string{LabelGame},
	)

	ChipsPaidOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChipsPaidOut,
			Help: HelpTextChipsPaidOut,
		},
		[]string{LabelGame},
	)

	Exchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExchanges,
			Help: HelpTextExchanges,
		},
		[]string{LabelOutcome},
	)

	ExchangeAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExchangeAmount,
			Help: HelpTextExchangeAmount,
		},
	)

	ExchangeFees = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExchangeFees,
			Help: HelpTextExchangeFees,
		},
	)
)

// Inventory Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)
)

// Flavor Metrics
var (
	FlavorTexts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFlavorTexts,
			Help: HelpTextFlavorTexts,
		},
		[]string{LabelSource},
	)
)
