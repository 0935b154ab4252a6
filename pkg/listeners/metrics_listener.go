package listeners

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anggasct/trafficsim"
)

// MetricsListener counts delivered events in Prometheus collectors
type MetricsListener struct {
	name          string
	notifications *prometheus.CounterVec
	green         prometheus.Gauge
}

// NewMetricsListener creates a metrics listener and registers its collectors with reg
func NewMetricsListener(reg prometheus.Registerer, name string) (*MetricsListener, error) {
	l := &MetricsListener{
		name: name,
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trafficsim",
				Name:      "notifications_total",
				Help:      "Traffic light events delivered to this listener.",
			},
			[]string{"event", "listener"},
		),
		green: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   "trafficsim",
				Name:        "light_green",
				Help:        "1 while the last delivered event turned the light green.",
				ConstLabels: prometheus.Labels{"listener": name},
			},
		),
	}

	for _, c := range []prometheus.Collector{l.notifications, l.green} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// expose zero-valued series for every event type
	for _, event := range trafficsim.EventTypes() {
		l.notifications.WithLabelValues(event.String(), name)
	}

	return l, nil
}

// Name implements trafficsim.Named
func (l *MetricsListener) Name() string {
	return l.name
}

// Update implements trafficsim.Listener
func (l *MetricsListener) Update(event trafficsim.EventType) {
	l.notifications.WithLabelValues(event.String(), l.name).Inc()

	switch event {
	case trafficsim.LightTurnedGreen:
		l.green.Set(1)
	case trafficsim.LightTurnedRed:
		l.green.Set(0)
	default:
		panic(trafficsim.NewUnknownEventError(event, l.name))
	}
}

// Notifications returns the counter for one event type
func (l *MetricsListener) Notifications(event trafficsim.EventType) prometheus.Counter {
	return l.notifications.WithLabelValues(event.String(), l.name)
}

// Green returns the light gauge
func (l *MetricsListener) Green() prometheus.Gauge {
	return l.green
}
