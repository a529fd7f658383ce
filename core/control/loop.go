// Package control runs the periodic tick loop that feeds sensor readings
// into the inference engine. The engine itself has no thread of its own;
// all scheduling lives here.
package control

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"example.com/pump-service/base/metrics"
	"example.com/pump-service/base/timebase"
	"example.com/pump-service/core/fuzzy"
)

// Source supplies one crisp input vector per control tick.
type Source interface {
	ReadInputs() map[string]float64
}

// RunLoop evaluates the engine once per interval until done is closed.
// Per-tick evaluation errors are logged and the tick skipped; they never
// stop the loop. In-flight evaluations always run to completion.
func RunLoop(log *zap.Logger, e *fuzzy.Engine, src Source,
	lclk timebase.LocalClock, interval time.Duration, done <-chan struct{}) {
	if interval <= 0 {
		panic("invalid control tick interval")
	}
	rateGauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.ControlInfusionRateN,
		Help: metrics.ControlInfusionRateH,
	})
	ticks := promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.ControlTicksN,
		Help: metrics.ControlTicksH,
	})
	tickErrors := promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.ControlTickErrorsN,
		Help: metrics.ControlTickErrorsH,
	})
	noRuleFired := promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.ControlNoRuleFiredN,
		Help: metrics.ControlNoRuleFiredH,
	})
	for {
		select {
		case <-done:
			log.Info("control loop stopped")
			return
		default:
		}
		inputs := src.ReadInputs()
		res, err := e.Evaluate(inputs)
		if err != nil {
			tickErrors.Inc()
			log.Info("skipping control tick", zap.Error(err))
		} else {
			ticks.Inc()
			rateGauge.Set(res.Output)
			if res.NoRuleFired {
				noRuleFired.Inc()
			}
			log.Debug("control tick",
				zap.Float64("infusion", res.Output),
				zap.Bool("no_rule_fired", res.NoRuleFired),
			)
		}
		lclk.Sleep(interval)
	}
}
