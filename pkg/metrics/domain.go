package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: "orders_created_total", Help: "Orders placed successfully"},
	)
	OrdersRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: "orders_rejected_total", Help: "Orders rejected before commit"},
		[]string{"reason"},
	)
	OtpEmailsEnqueuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: "otp_emails_enqueued_total", Help: "OTP emails handed to the mail queue"},
	)
)

func init() {
	prometheus.MustRegister(OrdersCreatedTotal, OrdersRejectedTotal, OtpEmailsEnqueuedTotal)
}
