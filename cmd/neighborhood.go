package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sebas-fontys/OR5-paintshop/config"
	"github.com/sebas-fontys/OR5-paintshop/core/construct"
	"github.com/sebas-fontys/OR5-paintshop/core/logger"
	"github.com/sebas-fontys/OR5-paintshop/core/neighborhood"
	infralogger "github.com/sebas-fontys/OR5-paintshop/infra/logger"
	"github.com/sebas-fontys/OR5-paintshop/metrics"
)

var neighborhoodCmd = &cobra.Command{
	Use:   "neighborhood",
	Short: "Enumerate and expand the neighborhood of a constructed schedule",
	RunE:  expandNeighborhood,
}

func init() {
	rootCmd.AddCommand(neighborhoodCmd)
}

func expandNeighborhood(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	infralogger.SetLevel(cfg.Logging.Level)
	logg := infralogger.New("neighborhood")

	inst, err := cfg.Instance.ToInstance()
	if err != nil {
		return fmt.Errorf("build instance: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Search.Seed))
	heuristic, err := construct.ByName(cfg.Search.Constructive, rng)
	if err != nil {
		return err
	}
	s, err := heuristic.Build(inst)
	if err != nil {
		return fmt.Errorf("construct schedule: %w", err)
	}

	kinds, err := cfg.Search.MoveKinds()
	if err != nil {
		return err
	}
	gen := neighborhood.NewGenerator(kinds...)
	moves := gen.Moves(s)
	grouping, err := gen.Expand(s, cfg.Search.Workers)
	if err != nil {
		return err
	}

	degenerate := len(grouping.Degenerate(s))
	sink, err := buildSink(ctx, cfg.Metrics, logg)
	if err != nil {
		return err
	}
	recordExpansion(sink, metrics.NeighborhoodRecord{
		Moves:      len(moves),
		Distinct:   grouping.Distinct(),
		Degenerate: degenerate,
		Time:       time.Now(),
	}, logg)

	logg.Debugw("expansion", map[string]any{
		"schedule": s.String(),
		"workers":  cfg.Search.Workers,
	})
	fmt.Printf("schedule:   %v\n", s)
	fmt.Printf("moves:      %d\n", len(moves))
	fmt.Printf("distinct:   %d neighbors\n", grouping.Distinct())
	fmt.Printf("degenerate: %d moves reproduce the input\n", degenerate)

	// Largest convergence bucket: distinct moves collapsing to one neighbor.
	most := 0
	for _, nbs := range grouping {
		for _, nb := range nbs {
			if len(nb.Moves) > most {
				most = len(nb.Moves)
			}
		}
	}
	fmt.Printf("max moves converging on one neighbor: %d\n", most)
	return nil
}

// recordExpansion forwards expansion statistics to sinks that track them.
func recordExpansion(sink metrics.MetricsSink, rec metrics.NeighborhoodRecord, logg logger.Logger) {
	nr, ok := sink.(metrics.NeighborhoodRecorder)
	if !ok {
		return
	}
	if err := nr.RecordNeighborhood(rec); err != nil {
		logg.Errorf("record expansion: %v", err)
	}
}
