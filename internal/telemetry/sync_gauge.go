package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

// Int64SyncGauge is a gauge that is set synchronously and reported through
// an observable gauge. The last value set for each attribute set is kept.
type Int64SyncGauge struct {
	gauge api.Int64ObservableGauge

	mu     sync.RWMutex
	values map[attribute.Distinct]gaugeValue
}

type gaugeValue struct {
	value int64
	attrs attribute.Set
}

func NewInt64SyncGauge(meter api.Meter, name string, options ...api.Int64ObservableGaugeOption) (*Int64SyncGauge, error) {
	g := &Int64SyncGauge{
		values: make(map[attribute.Distinct]gaugeValue),
	}
	options = append(options, api.WithInt64Callback(g.observe))
	gauge, err := meter.Int64ObservableGauge(name, options...)
	if err != nil {
		return nil, err
	}
	g.gauge = gauge
	return g, nil
}

func (g *Int64SyncGauge) observe(_ context.Context, observer api.Int64Observer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, v := range g.values {
		observer.Observe(v.value, api.WithAttributeSet(v.attrs))
	}
	return nil
}

// Set records value for the given attributes
func (g *Int64SyncGauge) Set(value int64, attrs ...attribute.KeyValue) {
	set := attribute.NewSet(attrs...)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[set.Equivalent()] = gaugeValue{value: value, attrs: set}
}

// Value returns the last value set for the given attributes
func (g *Int64SyncGauge) Value(attrs ...attribute.KeyValue) (int64, bool) {
	set := attribute.NewSet(attrs...)
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.values[set.Equivalent()]
	return v.value, ok
}
