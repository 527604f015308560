package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

type publisher interface {
	Incr(name string, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
	Close() error
}

// Reporter publishes client side metrics of catalog calls. A zero or nil
// Reporter discards everything.
type Reporter struct {
	client publisher
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	reporter := &Reporter{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Debug("statsd is disabled")
		return reporter, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	reporter.client = client
	return reporter, nil
}

// Close closes the statsd connection.
func (sd *Reporter) Close() error {
	if sd == nil || sd.client == nil {
		return nil
	}
	return sd.client.Close()
}

// Incr returns an increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return sd.metric(name, func(name string, tags []string, rate float64) error {
		return sd.client.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return sd.metric(name, func(name string, tags []string, rate float64) error {
		return sd.client.Timing(name, value, tags, rate)
	})
}

func (sd *Reporter) metric(name string, publish func(string, []string, float64) error) *Metric {
	if sd == nil || sd.client == nil {
		return &Metric{name: name}
	}
	return &Metric{
		rate:          sd.config.SamplingRate,
		logger:        sd.logger,
		name:          name,
		withInfluxTag: sd.config.WithInfluxTagFormat,
		publishFunc:   publish,
	}
}
