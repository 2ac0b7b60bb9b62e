// Package metrics counts session activity with Prometheus and serves the
// counters over HTTP.
package metrics

import (
	"github.com/dmitrijs2005/perono/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder implements session.Recorder on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	authAttempts      *prometheus.CounterVec
	profileWrites     *prometheus.CounterVec
	screenTransitions *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		authAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "perono_auth_attempts_total", Help: "Sign-in and sign-up attempts by outcome"},
			[]string{"op", "result"},
		),
		profileWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "perono_profile_writes_total", Help: "Profile writes after sign-up by outcome"},
			[]string{"result"},
		),
		screenTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "perono_screen_transitions_total", Help: "Screen changes by destination"},
			[]string{"to"},
		),
	}

	r.registry.MustRegister(
		r.authAttempts,
		r.profileWrites,
		r.screenTransitions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) AuthAttempt(op string, ok bool) {
	r.authAttempts.WithLabelValues(op, result(ok)).Inc()
}

func (r *Recorder) ProfileWrite(ok bool) {
	r.profileWrites.WithLabelValues(result(ok)).Inc()
}

func (r *Recorder) ScreenTransition(to session.Screen) {
	r.screenTransitions.WithLabelValues(string(to)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
