// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/MKhiriev/go-app-template/internal/flow"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)
)

var (
	actionsTotal    metric.Int64Counter
	effectsStarted  metric.Int64Counter
	effectsCanceled metric.Int64Counter
	actionsDropped  metric.Int64Counter
	effectsRunning  metric.Int64UpDownCounter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		actionsTotal, err = meter.Int64Counter(
			"flow_actions_total",
			metric.WithDescription("Actions reduced by a store"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		effectsStarted, err = meter.Int64Counter(
			"flow_effects_started_total",
			metric.WithDescription("Run effects started by a store"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		effectsCanceled, err = meter.Int64Counter(
			"flow_effects_cancelled_total",
			metric.WithDescription("Run effects cancelled before completion"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		actionsDropped, err = meter.Int64Counter(
			"flow_actions_dropped_total",
			metric.WithDescription("Actions discarded because their origin or target no longer exists"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		effectsRunning, err = meter.Int64UpDownCounter(
			"flow_effects_running",
			metric.WithDescription("Run effects currently in flight"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordAction(ctx context.Context, store string) {
	if err := initMetrics(); err != nil {
		return
	}
	actionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("store", store)))
}

func recordStarted(ctx context.Context, store string) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("store", store))
	effectsStarted.Add(ctx, 1, attrs)
	effectsRunning.Add(ctx, 1, attrs)
}

func recordFinished(ctx context.Context, store string) {
	if err := initMetrics(); err != nil {
		return
	}
	effectsRunning.Add(ctx, -1, metric.WithAttributes(attribute.String("store", store)))
}

func recordCancelled(ctx context.Context, store string) {
	if err := initMetrics(); err != nil {
		return
	}
	effectsCanceled.Add(ctx, 1, metric.WithAttributes(attribute.String("store", store)))
}

// recordDropped counts an action discarded either by a store (stale origin)
// or by a scoping operator (absent case). reason is the store name or the
// scope that rejected it.
func recordDropped(ctx context.Context, reason CancelID) {
	if err := initMetrics(); err != nil {
		return
	}
	actionsDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}

// startEffectSpan creates a span covering one Run effect.
func startEffectSpan(ctx context.Context, store string, key CancelID) (context.Context, trace.Span) {
	return tracer.Start(ctx, "flow.Store.run",
		trace.WithAttributes(
			attribute.String("flow.store", store),
			attribute.String("flow.cancel_id", string(key)),
		),
	)
}
