package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"player-auction/internal/auctionerrors"
)

// Metrics holds the auction's prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	bidsPlaced       prometheus.Counter
	bidsRejected     *prometheus.CounterVec
	bidRetries       prometheus.Counter
	salesFinalized   prometheus.Counter
	playersGenerated prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bidsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_bids_placed_total",
			Help: "Total number of accepted bids",
		}),
		bidsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_bids_rejected_total",
			Help: "Total number of rejected bids by error kind",
		}, []string{"kind"}),
		bidRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_bid_retries_total",
			Help: "Total number of bid writes retried after a concurrent update",
		}),
		salesFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_sales_finalized_total",
			Help: "Total number of players marked sold",
		}),
		playersGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_players_generated_total",
			Help: "Total number of players created",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auction_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.bidsPlaced,
		m.bidsRejected,
		m.bidRetries,
		m.salesFinalized,
		m.playersGenerated,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) BidPlaced() {
	if m == nil {
		return
	}
	m.bidsPlaced.Inc()
}

// BidRejected counts a failed bid under the taxonomy kind of err
func (m *Metrics) BidRejected(err error) {
	if m == nil {
		return
	}
	m.bidsRejected.WithLabelValues(string(auctionerrors.KindOf(err))).Inc()
}

func (m *Metrics) BidRetried() {
	if m == nil {
		return
	}
	m.bidRetries.Inc()
}

func (m *Metrics) SaleFinalized() {
	if m == nil {
		return
	}
	m.salesFinalized.Inc()
}

func (m *Metrics) PlayerGenerated() {
	if m == nil {
		return
	}
	m.playersGenerated.Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
