package config

import (
	"fmt"

	"github.com/sebas-fontys/OR5-paintshop/core/move"
)

// SearchConfig parameterizes the local search.
type SearchConfig struct {
	// Constructive selects the initial-schedule heuristic: "random",
	// "simple" or "greedy".
	Constructive string `json:"constructive"`
	// Strategy selects moves within an iteration: "first", "random" or
	// "best".
	Strategy string `json:"strategy"`
	// Heuristic drives the improvement loop: "hillclimb" or "tabu".
	Heuristic string `json:"heuristic"`
	// Catalog lists the enumerated move variants in order.
	Catalog []string `json:"catalog"`
	// Seed feeds every pseudo-random component, making runs reproducible.
	Seed int64 `json:"seed"`
	// Workers bounds the goroutines used for neighborhood expansion.
	Workers       int `json:"workers"`
	TabuTenure    int `json:"tabu_tenure"`
	MaxIterations int `json:"max_iterations"`
}

// SetDefaults applies sane defaults.
func (c *SearchConfig) SetDefaults() {
	if c.Constructive == "" {
		c.Constructive = "random"
	}
	if c.Strategy == "" {
		c.Strategy = "best"
	}
	if c.Heuristic == "" {
		c.Heuristic = "hillclimb"
	}
	if len(c.Catalog) == 0 {
		c.Catalog = []string{"swap", "relocate", "swap_queues"}
	}
	if c.Seed == 0 {
		c.Seed = 420
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.TabuTenure == 0 {
		c.TabuTenure = 50
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
}

// Validate checks the enumerated names.
func (c SearchConfig) Validate() error {
	switch c.Constructive {
	case "random", "simple", "greedy":
	default:
		return fmt.Errorf("search: unknown constructive heuristic %q", c.Constructive)
	}
	switch c.Strategy {
	case "first", "random", "best":
	default:
		return fmt.Errorf("search: unknown strategy %q", c.Strategy)
	}
	switch c.Heuristic {
	case "hillclimb", "tabu":
	default:
		return fmt.Errorf("search: unknown heuristic %q", c.Heuristic)
	}
	if _, err := c.MoveKinds(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("search: workers must be >= 0")
	}
	return nil
}

// MoveKinds parses the catalog names.
func (c SearchConfig) MoveKinds() ([]move.Kind, error) {
	kinds := make([]move.Kind, 0, len(c.Catalog))
	for _, name := range c.Catalog {
		k, err := move.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
