package docstore

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/idgen"
)

// Option configures the Store.
type Option interface {
	apply(*storeConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*storeConfig)

func (f optionFunc) apply(c *storeConfig) { f(c) }

type storeConfig struct {
	ids        idgen.Generator
	now        func() time.Time
	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithUUIDs generates random UUID identifiers. This is the default.
func WithUUIDs() Option {
	return optionFunc(func(c *storeConfig) {
		c.ids = idgen.UUID()
	})
}

// WithULIDs generates time-ordered ULID identifiers.
func WithULIDs() Option {
	return optionFunc(func(c *storeConfig) {
		c.ids = idgen.ULID()
	})
}

// WithIDFunc generates identifiers with fn. fn must never repeat a value.
func WithIDFunc(fn func() string) Option {
	return optionFunc(func(c *storeConfig) {
		if fn != nil {
			c.ids = idgen.Func(fn)
		}
	})
}

// WithClock sets the time source for creation timestamps of new documents.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *storeConfig) {
		c.now = now
	})
}

// WithLogger sets a zap logger for store operations.
// A logger stored in the call's context takes precedence.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *storeConfig) {
		c.logger = l
	})
}

// WithMetrics registers Prometheus collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *storeConfig) {
		c.metricsReg = reg
	})
}
