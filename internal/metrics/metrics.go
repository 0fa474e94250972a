// Package metrics exports scene counters in the Prometheus text format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	reinits       prometheus.Counter
	bodies        *prometheus.GaugeVec
}

// New returns a collector backed by its own registry, so several scenes in
// one process do not collide.
func New() *Collector {
	m := &Collector{
		reg: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Frames rendered since start",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_frame_duration_seconds",
			Help:    "Time spent advancing and drawing one frame",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		reinits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_reinitializations_total",
			Help: "Scene reinitializations, including the first one",
		}),
		bodies: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orrery_bodies",
				Help: "Bodies in the current scene",
			},
			[]string{"kind"},
		),
	}

	m.reg.MustRegister(m.frames)
	m.reg.MustRegister(m.frameDuration)
	m.reg.MustRegister(m.reinits)
	m.reg.MustRegister(m.bodies)

	return m
}

// Registry exposes the underlying registry for tests and embedding.
func (m *Collector) Registry() *prometheus.Registry { return m.reg }

func (m *Collector) ObserveFrame(d time.Duration) {
	m.frames.Inc()
	m.frameDuration.Observe(d.Seconds())
}

func (m *Collector) Reinit() { m.reinits.Inc() }

func (m *Collector) SetBodies(planets, moons, asteroids, stars int) {
	m.bodies.WithLabelValues("planet").Set(float64(planets))
	m.bodies.WithLabelValues("moon").Set(float64(moons))
	m.bodies.WithLabelValues("asteroid").Set(float64(asteroids))
	m.bodies.WithLabelValues("star").Set(float64(stars))
}

func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics listener %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
