package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebas-fontys/OR5-paintshop/config"
	"github.com/sebas-fontys/OR5-paintshop/core/solutionspace"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Report the solution-space size of the configured instance",
	RunE:  reportSpace,
}

func init() {
	rootCmd.AddCommand(spaceCmd)
}

func reportSpace(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	n := len(cfg.Instance.Orders)
	m := len(cfg.Instance.MachineSpeeds)
	fmt.Printf("orders:       %d\n", n)
	fmt.Printf("machines:     %d\n", m)
	fmt.Printf("compositions: %d\n", solutionspace.Compositions(n, m))
	fmt.Printf("schedules:    %s\n", solutionspace.Size(n, m))
	return nil
}
