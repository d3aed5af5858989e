// Package obs exposes the engine's Prometheus metrics.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	OrdersTotal *prometheus.CounterVec
	TradesTotal prometheus.Counter
	TradedQty   prometheus.Counter
	BookLevels  *prometheus.GaugeVec
	RestingQty  *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_orders_total",
			Help: "Submissions by terminal status.",
		}, []string{"status"}),
		TradesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_trades_total",
			Help: "Number of fills emitted.",
		}),
		TradedQty: factory.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_traded_qty_total",
			Help: "Total quantity traded.",
		}),
		BookLevels: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "matchbook_book_levels",
			Help: "Resting price levels per side.",
		}, []string{"side"}),
		RestingQty: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "matchbook_resting_qty",
			Help: "Total resting quantity per side.",
		}, []string{"side"}),
	}
}

// Handler serves the default registry's metrics.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
