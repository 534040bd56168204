package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CartMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bodiastore",
		Subsystem: "cart",
		Name:      "mutations_total",
		Help:      "Total cart mutations by operation.",
	}, []string{"op"})

	Checkouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bodiastore",
		Subsystem: "orders",
		Name:      "checkouts_total",
		Help:      "Total committed checkouts.",
	})

	CheckoutAmount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bodiastore",
		Subsystem: "orders",
		Name:      "checkout_amount_total",
		Help:      "Sum of amounts charged by committed checkouts.",
	})

	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bodiastore",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Read-cache hits by backend.",
	}, []string{"backend"})

	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bodiastore",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Read-cache misses by backend.",
	}, []string{"backend"})
)

func init() {
	prometheus.MustRegister(CartMutations, Checkouts, CheckoutAmount, CacheHits, CacheMisses)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
