package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"player-auction/internal/auctionerrors"
)

func TestMetrics_Registered(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)
	m.BidPlaced()
	m.BidRejected(auctionerrors.ErrBidTooLow)
	m.ObserveRequest("GET", "/api/players", 200, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	registered := make(map[string]bool)
	for _, family := range families {
		registered[family.GetName()] = true
	}
	for _, name := range []string{
		"auction_bids_placed_total",
		"auction_bids_rejected_total",
		"auction_http_requests_total",
		"auction_http_request_duration_seconds",
	} {
		require.True(t, registered[name], "metric %q should be registered", name)
	}
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.BidPlaced()
	m.BidPlaced()
	m.BidRetried()
	m.SaleFinalized()
	m.PlayerGenerated()
	m.BidRejected(auctionerrors.ErrBidTooLow)
	m.BidRejected(auctionerrors.ErrForbidden)
	m.BidRejected(errors.New("boom"))
	m.ObserveRequest("POST", "/api/bids", 400, 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.bidsPlaced))
	require.Equal(t, 1.0, testutil.ToFloat64(m.bidRetries))
	require.Equal(t, 1.0, testutil.ToFloat64(m.salesFinalized))
	require.Equal(t, 1.0, testutil.ToFloat64(m.playersGenerated))
	require.Equal(t, 1.0, testutil.ToFloat64(m.bidsRejected.WithLabelValues("conflict")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.bidsRejected.WithLabelValues("auth")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.bidsRejected.WithLabelValues("internal")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/bids", "400")))
	require.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.BidPlaced()
		m.BidRejected(auctionerrors.ErrNoBids)
		m.BidRetried()
		m.SaleFinalized()
		m.PlayerGenerated()
		m.ObserveRequest("GET", "/", 200, time.Second)
	})
}
