/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler
	Snapshot() ([]Sample, error)

	// Collection
	IncTokens(kind string)
	IncQueries(kind, outcome string)
	ObserveParseNS(outcome string, t int64)
}

// Sample is a single gathered series, flattened for display.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

type metricsStore struct {
	registry *prometheus.Registry
	Tokens   *prometheus.CounterVec
	Queries  *prometheus.CounterVec
	ParseNS  *prometheus.HistogramVec
}

const Namespace = "guiql"

var (
	KindLabel    = "kind"
	OutcomeLabel = "outcome"

	OutcomeOk    = "ok"
	OutcomeError = "error"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guiql_tokens",
			Help: "Token counts by kind",
		}, []string{KindLabel}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "guiql_queries",
			Help: "Evaluated queries by query kind and outcome",
		}, []string{KindLabel, OutcomeLabel}),
		ParseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guiql_parse_ns",
			Help:    "Time spent parsing a query",
			Buckets: buckets,
		}, []string{OutcomeLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncTokens(kind string) {
	ms.Tokens.With(prometheus.Labels{KindLabel: kind}).Inc()
}

func (ms *metricsStore) IncQueries(kind, outcome string) {
	ms.Queries.With(prometheus.Labels{KindLabel: kind, OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) ObserveParseNS(outcome string, t int64) {
	ms.ParseNS.
		With(prometheus.Labels{OutcomeLabel: outcome}).
		Observe(float64(t))
}

// Snapshot gathers the guiql series of the registry. Histograms are reported
// as their sample count and sum.
func (ms *metricsStore) Snapshot() ([]Sample, error) {
	families, err := ms.registry.Gather()
	if err != nil {
		return nil, err
	}

	samples := []Sample{}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())

			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				samples = append(samples, Sample{mf.GetName(), labels, m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				samples = append(samples, Sample{mf.GetName(), labels, m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				samples = append(samples,
					Sample{mf.GetName() + "_count", labels, float64(h.GetSampleCount())},
					Sample{mf.GetName() + "_sum", labels, h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})

	return samples, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
