package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "isp_backoffice_"

var (
	ProspectsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "prospects_finalized_total",
		Help: "Prospects converted into clients",
	})

	FinalizeWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "finalize_partial_failures_total",
		Help: "Writes that failed after the client record was created, by step",
	}, []string{"step"})

	ProratedDays = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    metricPrefix + "prorated_days",
		Help:    "Days charged by proration at finalization",
		Buckets: []float64{0, 1, 5, 10, 15, 20, 25, 30, 40, 60},
	})

	MonthlyChargesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "monthly_charges_generated_total",
		Help: "Monthly fee charges created",
	})

	BalanceUpdateFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "balance_update_failures_total",
		Help: "Billing balance updates that gave up after retries",
	})

	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "payments_recorded_total",
		Help: "Payments persisted, by payment type",
	}, []string{"payment_type"})

	SettlementConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "settlement_conflicts_total",
		Help: "Payments persisted for a charge that another payment settled first, by payment type",
	}, []string{"payment_type"})

	ScheduledServices = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: metricPrefix + "scheduled_services_total",
		Help: "Field-service visit transitions, by resulting status",
	}, []string{"status"})
)

// Handler exposes the default registry for gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
