package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sebas-fontys/OR5-paintshop/config"
	"github.com/sebas-fontys/OR5-paintshop/core/construct"
	"github.com/sebas-fontys/OR5-paintshop/core/neighborhood"
	"github.com/sebas-fontys/OR5-paintshop/core/objective"
	"github.com/sebas-fontys/OR5-paintshop/core/search"
	"github.com/sebas-fontys/OR5-paintshop/infra/logger"
	"github.com/sebas-fontys/OR5-paintshop/internal/eventbus"
	"github.com/sebas-fontys/OR5-paintshop/metrics"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Construct an initial schedule and improve it",
	RunE:  solve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func solve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("solve")

	inst, err := cfg.Instance.ToInstance()
	if err != nil {
		return fmt.Errorf("build instance: %w", err)
	}
	eval, err := objective.New(inst)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Search.Seed))

	heuristic, err := construct.ByName(cfg.Search.Constructive, rng)
	if err != nil {
		return err
	}
	initial, err := heuristic.Build(inst)
	if err != nil {
		return fmt.Errorf("construct initial schedule: %w", err)
	}

	kinds, err := cfg.Search.MoveKinds()
	if err != nil {
		return err
	}
	gen := neighborhood.NewGenerator(kinds...)
	strategy, err := search.StrategyByName(cfg.Search.Strategy, gen, eval, rng)
	if err != nil {
		return err
	}

	bus := eventbus.New[search.Event]()
	defer bus.Close()
	sink, err := buildSink(ctx, cfg.Metrics, logg)
	if err != nil {
		return err
	}
	metrics.StartEventCollector(ctx, bus, sink)

	var improver search.Improver
	switch cfg.Search.Heuristic {
	case "tabu":
		improver = search.Tabu{
			Improve:       strategy,
			Fallback:      strategy,
			Eval:          eval,
			Tenure:        cfg.Search.TabuTenure,
			MaxIterations: cfg.Search.MaxIterations,
			Log:           logg,
			Bus:           bus,
		}
	default:
		improver = search.HillClimb{
			Strategy:      strategy,
			Eval:          eval,
			MaxIterations: cfg.Search.MaxIterations,
			Log:           logg,
			Bus:           bus,
		}
	}

	logg.Infof("initial schedule %v cost %.2f", initial, eval.MustCost(initial))
	data, err := improver.Run(ctx, initial)
	if err != nil {
		return err
	}
	logg.Debugw("run finished", map[string]any{
		"run_id":     data.RunID,
		"iterations": len(data.Iterations),
		"elapsed":    data.Elapsed,
	})
	fmt.Printf("best schedule: %v\ncost: %.2f (%d iterations, %s)\n",
		data.Best, data.BestCost, len(data.Iterations), data.Elapsed)
	return nil
}

func buildSink(ctx context.Context, cfg metrics.Config, logg logger.Logger) (metrics.MetricsSink, error) {
	var sinks []metrics.MetricsSink
	if cfg.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.PrometheusAddr, logg); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg, logg))
	}
	switch len(sinks) {
	case 0:
		return metrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	}
	return metrics.NewMultiSink(sinks...), nil
}
