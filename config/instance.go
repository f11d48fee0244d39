package config

import (
	"fmt"

	"github.com/sebas-fontys/OR5-paintshop/core/model"
)

// OrderConfig describes one paint order. Colors are referenced by name and
// encoded to ids when the instance is built.
type OrderConfig struct {
	Surface  float64 `json:"surface"`
	Color    string  `json:"color"`
	Deadline float64 `json:"deadline"`
	Penalty  float64 `json:"penalty"`
}

// SetupConfig describes the changeover time between two paint colors.
type SetupConfig struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Time float64 `json:"time"`
}

// InstanceConfig declares the problem parameters.
type InstanceConfig struct {
	// MachineSpeeds lists one processing speed per machine.
	MachineSpeeds []float64     `json:"machine_speeds"`
	Orders        []OrderConfig `json:"orders"`
	Setups        []SetupConfig `json:"setups"`
}

// Validate checks mandatory fields without building the instance.
func (c InstanceConfig) Validate() error {
	if len(c.MachineSpeeds) == 0 {
		return fmt.Errorf("instance: machine_speeds is required")
	}
	if len(c.Orders) == 0 {
		return fmt.Errorf("instance: orders is required")
	}
	for i, o := range c.Orders {
		if o.Color == "" {
			return fmt.Errorf("instance: order %d has no color", i)
		}
	}
	for i, s := range c.Setups {
		if s.From == "" || s.To == "" {
			return fmt.Errorf("instance: setup %d needs both colors", i)
		}
		if s.Time < 0 {
			return fmt.Errorf("instance: setup %d time must be >= 0", i)
		}
	}
	return nil
}

// ToInstance encodes color names to ids, builds the setup matrix and returns
// the validated model instance.
func (c InstanceConfig) ToInstance() (*model.Instance, error) {
	ids := make(map[string]int)
	var names []string
	colorID := func(name string) int {
		if id, ok := ids[name]; ok {
			return id
		}
		id := len(names)
		ids[name] = id
		names = append(names, name)
		return id
	}
	orders := make([]model.Order, len(c.Orders))
	for i, o := range c.Orders {
		orders[i] = model.Order{
			Surface:  o.Surface,
			Color:    colorID(o.Color),
			Deadline: o.Deadline,
			Penalty:  o.Penalty,
		}
	}
	setups := make([][]float64, len(names))
	for i := range setups {
		setups[i] = make([]float64, len(names))
	}
	for _, s := range c.Setups {
		from, ok := ids[s.From]
		if !ok {
			// A setup between colors no order uses does not affect any cost.
			continue
		}
		to, ok := ids[s.To]
		if !ok {
			continue
		}
		setups[from][to] = s.Time
	}
	return model.NewInstance(orders, c.MachineSpeeds, setups)
}
