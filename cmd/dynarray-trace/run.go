package main

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/pavanmanishd/dynarray/internal/script"
	"github.com/pavanmanishd/dynarray/metrics"
)

func runScript(cfg config, logger log.Logger) error {
	s, err := script.Load(cfg.Script)
	if err != nil {
		return err
	}
	logger = log.With(logger, "script", s.Name)

	a, err := script.Run(s, script.ObserverFunc(func(st script.Step) {
		level.Debug(logger).Log("msg", "applied", "step", st.Index, "op", st.Op.Op, "size", st.Size, "capacity", st.Capacity)
		if st.Grew {
			level.Info(logger).Log("msg", "capacity grew", "step", st.Index, "op", st.Op.Op, "capacity", st.Capacity)
		}
	}))
	if err != nil {
		return err
	}

	m := a.Metrics()
	level.Info(logger).Log(
		"msg", "script finished",
		"values", fmt.Sprint(a.Values()),
		"size", m.Size,
		"capacity", m.Capacity,
		"reallocations", m.Reallocations,
		"utilization", m.Utilization,
	)

	if cfg.Metrics {
		return logMetrics(logger, s.Name, a)
	}
	return nil
}

func logMetrics(logger log.Logger, name string, src metrics.Source) error {
	c := metrics.NewCollector()
	c.Track(name, src)

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return errors.Wrap(err, "cannot register collector")
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetGauge().GetValue()
			if mf.GetType() == dto.MetricType_COUNTER {
				value = metric.GetCounter().GetValue()
			}
			level.Info(logger).Log("msg", "metric", "name", mf.GetName(), "value", value)
		}
	}
	return nil
}
