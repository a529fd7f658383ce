package benchmark

import (
	"log"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"example.com/pump-service/core/fuzzy"
	"example.com/pump-service/driver/sensor"
)

// RunEngineBenchmark measures the latency of single evaluations over a
// stream of simulated sensor readings and prints the percentile
// distribution in microseconds.
func RunEngineBenchmark(e *fuzzy.Engine, numEvaluations int) {
	hg := hdrhistogram.New(1, 1_000_000, 5)
	src := sensor.NewSimulator()
	for i := numEvaluations; i > 0; i-- {
		inputs := src.ReadInputs()
		t0 := time.Now()
		_, err := e.Evaluate(inputs)
		if err != nil {
			log.Printf("Failed to evaluate: %v", err)
			return
		}
		err = hg.RecordValue(time.Since(t0).Microseconds())
		if err != nil {
			log.Printf("Failed to record evaluation time: %v", err)
		}
	}
	hg.PercentilesPrint(os.Stdout, 1, 1.0)
}
