// Fuzzy insulin infusion control service

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/pump-service/benchmark"

	"example.com/pump-service/core/config"
	"example.com/pump-service/core/control"
	"example.com/pump-service/core/fuzzy"
	"example.com/pump-service/core/timebase"

	"example.com/pump-service/driver/clock"
	"example.com/pump-service/driver/sensor"
)

const defaultMetricsAddr = "127.0.0.1:8080"

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(log *zap.Logger, addr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(addr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string) config.Config {
	if configFile == "" {
		return config.Default()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	return cfg
}

func buildEngine(cfg config.Config) *fuzzy.Engine {
	engine, err := cfg.Build(log)
	if err != nil {
		log.Fatal("failed to build inference engine", zap.Error(err))
	}
	return engine
}

func runDaemon(configFile string) {
	cfg := loadConfig(configFile)
	engine := buildEngine(cfg)
	tick, err := cfg.Tick()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	lclk := &clock.SystemClock{Log: log}
	timebase.RegisterClock(lclk)

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Info("shutting down", zap.String("signal", s.String()))
		close(done)
	}()

	addr := cfg.MetricsAddr
	if addr == "" {
		addr = defaultMetricsAddr
	}
	go runMonitor(log, addr)

	log.Info("starting control loop",
		zap.Duration("tick", tick),
		zap.Int("rules", len(engine.Rules())),
	)
	control.RunLoop(log, engine, sensor.NewSimulator(), lclk, tick, done)
}

func runEval(configFile string, pairs []string) {
	cfg := loadConfig(configFile)
	engine := buildEngine(cfg)

	lclk := &clock.SystemClock{Log: log}
	timebase.RegisterClock(lclk)

	inputs := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			exitWithUsage()
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			exitWithUsage()
		}
		inputs[k] = x
	}

	res, err := engine.Evaluate(inputs)
	if err != nil {
		log.Fatal("failed to evaluate", zap.Error(err))
	}

	for _, v := range engine.Inputs() {
		fmt.Printf("%s = %g\n", v.Name(), inputs[v.Name()])
		for _, t := range v.Terms() {
			d := res.Fuzzified[v.Name()][t.Label]
			if d > 0 {
				fmt.Printf("\t%s: %.3f\n", t.Label, d)
			}
		}
	}
	for _, a := range res.Activations {
		if a.Degree > 0 {
			fmt.Printf("rule %s (%s) fired at %.3f\n", a.ID, a.Label, a.Degree)
		}
	}
	if res.NoRuleFired {
		fmt.Println("no rule fired, reporting fallback output")
	}
	fmt.Printf("%s = %.2f\n", engine.Output().Name(), res.Output)
}

func runBenchmark(configFile string, numEvaluations int) {
	cfg := loadConfig(configFile)
	engine, err := cfg.Build(zap.NewNop())
	if err != nil {
		log.Fatal("failed to build inference engine", zap.Error(err))
	}
	lclk := &clock.SystemClock{Log: zap.NewNop()}
	timebase.RegisterClock(lclk)
	benchmark.RunEngineBenchmark(engine, numEvaluations)
}

func exitWithUsage() {
	fmt.Println("usage: pumpservice daemon|eval|benchmark [flags]")
	os.Exit(1)
}

func main() {
	var (
		verbose        bool
		configFile     string
		numEvaluations int
	)

	daemonFlags := flag.NewFlagSet("daemon", flag.ExitOnError)
	evalFlags := flag.NewFlagSet("eval", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	daemonFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	daemonFlags.StringVar(&configFile, "config", "", "Config file")

	evalFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	evalFlags.StringVar(&configFile, "config", "", "Config file")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.StringVar(&configFile, "config", "", "Config file")
	benchmarkFlags.IntVar(&numEvaluations, "n", 100_000, "Number of evaluations")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case daemonFlags.Name():
		err := daemonFlags.Parse(os.Args[2:])
		if err != nil || daemonFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runDaemon(configFile)
	case evalFlags.Name():
		err := evalFlags.Parse(os.Args[2:])
		if err != nil || evalFlags.NArg() == 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runEval(configFile, evalFlags.Args())
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		if numEvaluations <= 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(configFile, numEvaluations)
	default:
		exitWithUsage()
	}
}
