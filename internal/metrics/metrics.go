package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// Metrics holds the till's Prometheus metrics
type Metrics struct {
	TransactionsProcessed *prometheus.CounterVec
	SalesTotal            prometheus.Counter
	ChangePaidTotal       prometheus.Counter
	TillBalance           prometheus.Gauge
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransactionsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "till_transactions_processed_total",
			Help: "Transactions processed, by change outcome",
		}, []string{"outcome"}),
		SalesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "till_sales_rand_total",
			Help: "Gross sales rung up, in Rand",
		}),
		ChangePaidTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "till_change_paid_rand_total",
			Help: "Change handed out, in Rand",
		}),
		TillBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "till_balance_rand",
			Help: "Running till balance, in Rand",
		}),
	}
}

// ObserveResult records one processed transaction and the balance after it
func (m *Metrics) ObserveResult(r models.ProcessingResult, balance int) {
	m.TransactionsProcessed.WithLabelValues(string(r.Outcome)).Inc()
	m.SalesTotal.Add(float64(r.TransactionTotal))
	m.ChangePaidTotal.Add(float64(models.SumDenominations(r.Change)))
	m.TillBalance.Set(float64(balance))
}
