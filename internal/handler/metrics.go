package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of successfully created orders",
		},
	)

	ordersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order creation attempts",
		},
	)

	adminsActivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "admins_activated_total",
			Help:      "Total number of admin activations",
		},
	)

	rejectedInitData = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "rejected_init_data_total",
			Help:      "Total number of requests rejected due to invalid init data signature",
		},
	)
)
