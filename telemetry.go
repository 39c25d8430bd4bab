// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package beanz

import (
	"context"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package to tracer and meter providers.
const instrumentationName = "rivaas.dev/beanz"

// Span and metric names.
const (
	spanDescribe       = "beanz.describe"
	metricBuilt        = "beanz.descriptors.built"
	metricDropped      = "beanz.properties.dropped"
	metricCacheHits    = "beanz.cache.hits"
	attrType           = "beanz.type"
	attrProperties     = "beanz.properties"
	attrDropped        = "beanz.dropped"
	attrCodecsResolved = "beanz.codecs"
)

// telemetry records describe spans and counters.
type telemetry struct {
	tracer    trace.Tracer
	built     metric.Int64Counter
	dropped   metric.Int64Counter
	cacheHits metric.Int64Counter
}

func newTelemetry(cfg *config) (*telemetry, error) {
	meter := cfg.meterProvider.Meter(instrumentationName)
	t := &telemetry{tracer: cfg.tracerProvider.Tracer(instrumentationName)}

	var err error
	t.built, err = meter.Int64Counter(
		metricBuilt,
		metric.WithDescription("Number of bean descriptors built"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create descriptors built counter: %w", err)
	}

	t.dropped, err = meter.Int64Counter(
		metricDropped,
		metric.WithDescription("Number of properties dropped as ambiguous"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create properties dropped counter: %w", err)
	}

	t.cacheHits, err = meter.Int64Counter(
		metricCacheHits,
		metric.WithDescription("Number of descriptors served from the cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache hits counter: %w", err)
	}

	return t, nil
}

// startDescribe starts the span around one descriptor build.
func (t *telemetry) startDescribe(ctx context.Context, typ reflect.Type) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanDescribe,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String(attrType, typ.String())),
	)
}

// finishDescribe records the outcome of a build on span and the counters.
func (t *telemetry) finishDescribe(ctx context.Context, span trace.Span, typ reflect.Type, bd *BeanDescriptor, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return
	}
	span.SetAttributes(
		attribute.Int(attrProperties, bd.Len()),
		attribute.Int(attrDropped, len(bd.dropped)),
		attribute.Int(attrCodecsResolved, bd.codecs.Len()),
	)
	span.SetStatus(codes.Ok, "")

	attrs := metric.WithAttributes(attribute.String(attrType, typ.String()))
	t.built.Add(ctx, 1, attrs)
	if n := len(bd.dropped); n > 0 {
		t.dropped.Add(ctx, int64(n), attrs)
	}
}

func (t *telemetry) recordHit(ctx context.Context, typ reflect.Type) {
	t.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String(attrType, typ.String())))
}
