package metrics

import (
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ajo Metrics Collector
// Counts committed pool activity and gateway traffic

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all ajo metrics
type Collector struct {
	// Pool metrics
	PoolsCreated   *prometheus.CounterVec
	Contributions  *prometheus.CounterVec
	ContributedAmt *prometheus.CounterVec
	Payouts        *prometheus.CounterVec
	PaidOutAmt     *prometheus.CounterVec
	Withdrawals    prometheus.Counter
	WithdrawnAmt   prometheus.Counter
	Penalties      *prometheus.CounterVec
	PenaltyAmt     *prometheus.CounterVec
	YieldAmt       prometheus.Counter
	Reentries      prometheus.Counter

	// API metrics
	APIRequestsTotal  *prometheus.CounterVec
	APIRequestLatency *prometheus.HistogramVec
	APIErrorsTotal    *prometheus.CounterVec
	RateLimitHits     *prometheus.CounterVec
}

// GetCollector returns the singleton metrics collector registered with the
// default Prometheus registry
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = NewCollector(prometheus.DefaultRegisterer)
	})
	return collector
}

// NewCollector creates a collector and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{}

	c.PoolsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "pools",
			Name:      "created_total",
			Help:      "Total number of pools created",
		},
		[]string{"kind"},
	)

	c.Contributions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "contributions",
			Name:      "total",
			Help:      "Total number of contributions and deposits",
		},
		[]string{"kind"},
	)

	c.ContributedAmt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "contributions",
			Name:      "amount",
			Help:      "Total amount contributed in base units",
		},
		[]string{"kind"},
	)

	c.Payouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "payouts",
			Name:      "total",
			Help:      "Total number of payouts",
		},
		[]string{"kind"},
	)

	c.PaidOutAmt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "payouts",
			Name:      "amount",
			Help:      "Total amount paid out in base units",
		},
		[]string{"kind"},
	)

	c.Withdrawals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "withdrawals",
			Name:      "total",
			Help:      "Total number of flexible pool withdrawals",
		},
	)

	c.WithdrawnAmt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "withdrawals",
			Name:      "amount",
			Help:      "Total amount withdrawn in base units",
		},
	)

	c.Penalties = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "penalties",
			Name:      "total",
			Help:      "Total number of penalties applied",
		},
		[]string{"kind"},
	)

	c.PenaltyAmt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "penalties",
			Name:      "amount",
			Help:      "Total penalty amount in base units",
		},
		[]string{"kind"},
	)

	c.YieldAmt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "yield",
			Name:      "issued_amount",
			Help:      "Total yield minted into flexible pools in base units",
		},
	)

	c.Reentries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "guard",
			Name:      "reentry_rejected_total",
			Help:      "Total calls rejected while the same pool had a call in flight",
		},
	)

	// API metrics
	c.APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total API requests",
		},
		[]string{"method", "path", "status"},
	)

	c.APIRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ajo",
			Subsystem: "api",
			Name:      "request_latency_ms",
			Help:      "API request latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"method", "path"},
	)

	c.APIErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Total API errors",
		},
		[]string{"method", "path", "error_type"},
	)

	c.RateLimitHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajo",
			Subsystem: "api",
			Name:      "rate_limit_hits",
			Help:      "Total rate limit hits",
		},
		[]string{"limit_type"},
	)

	reg.MustRegister(
		c.PoolsCreated,
		c.Contributions,
		c.ContributedAmt,
		c.Payouts,
		c.PaidOutAmt,
		c.Withdrawals,
		c.WithdrawnAmt,
		c.Penalties,
		c.PenaltyAmt,
		c.YieldAmt,
		c.Reentries,
		c.APIRequestsTotal,
		c.APIRequestLatency,
		c.APIErrorsTotal,
		c.RateLimitHits,
	)

	return c
}

// ============ Pool Recorder ============

// PoolCreated counts a new pool
func (c *Collector) PoolCreated(kind string) {
	c.PoolsCreated.WithLabelValues(kind).Inc()
}

// Contribution counts a contribution or deposit
func (c *Collector) Contribution(kind string, amount math.Int) {
	c.Contributions.WithLabelValues(kind).Inc()
	c.ContributedAmt.WithLabelValues(kind).Add(toFloat(amount))
}

// Payout counts a disbursement to one member
func (c *Collector) Payout(kind string, amount math.Int) {
	c.Payouts.WithLabelValues(kind).Inc()
	c.PaidOutAmt.WithLabelValues(kind).Add(toFloat(amount))
}

// Withdrawal counts a flexible pool withdrawal
func (c *Collector) Withdrawal(amount math.Int) {
	c.Withdrawals.Inc()
	c.WithdrawnAmt.Add(toFloat(amount))
}

// Penalty counts an applied penalty
func (c *Collector) Penalty(kind string, amount math.Int) {
	c.Penalties.WithLabelValues(kind).Inc()
	c.PenaltyAmt.WithLabelValues(kind).Add(toFloat(amount))
}

// YieldIssued adds minted yield
func (c *Collector) YieldIssued(amount math.Int) {
	c.YieldAmt.Add(toFloat(amount))
}

// ReentryRejected counts a call refused by the pool latch
func (c *Collector) ReentryRejected() {
	c.Reentries.Inc()
}

// toFloat converts a base-unit amount for a counter; counters never go down
func toFloat(amount math.Int) float64 {
	if amount.IsNil() || !amount.IsPositive() {
		return 0
	}
	f, _ := amount.BigInt().Float64()
	return f
}

// ============ API ============

// RecordAPIRequest records an API request
func (c *Collector) RecordAPIRequest(method, path, status string, latencyMs float64) {
	c.APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.APIRequestLatency.WithLabelValues(method, path).Observe(latencyMs)
}

// RecordAPIError records a failed API request by error class
func (c *Collector) RecordAPIError(method, path, errorType string) {
	c.APIErrorsTotal.WithLabelValues(method, path, errorType).Inc()
}

// RecordRateLimitHit records a request refused by a limiter
func (c *Collector) RecordRateLimitHit(limitType string) {
	c.RateLimitHits.WithLabelValues(limitType).Inc()
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
