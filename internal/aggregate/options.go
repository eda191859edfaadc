package aggregate

import "errors"

const (
	DefaultDivergenceThreshold = 0.8
	DefaultMaxAlerts           = 5
	DefaultMaxItems            = 10
)

type Options struct {
	// DivergenceThreshold is the minimum sample stdev that raises an alert.
	DivergenceThreshold float64 `yaml:"divergence_threshold"`
	MaxAlerts           int     `yaml:"max_alerts"`
	// MaxItems caps positives, problems and priorities.
	MaxItems int `yaml:"max_items"`
}

func DefaultOptions() Options {
	return Options{
		DivergenceThreshold: DefaultDivergenceThreshold,
		MaxAlerts:           DefaultMaxAlerts,
		MaxItems:            DefaultMaxItems,
	}
}

func (o Options) Validate() error {
	if o.DivergenceThreshold < 0 {
		return errors.New("divergence threshold must not be negative")
	}
	if o.MaxAlerts < 0 {
		return errors.New("max alerts must not be negative")
	}
	if o.MaxItems < 0 {
		return errors.New("max items must not be negative")
	}
	return nil
}

// withDefaults fills zero fields, so a zero Options behaves like DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DivergenceThreshold == 0 {
		o.DivergenceThreshold = d.DivergenceThreshold
	}
	if o.MaxAlerts == 0 {
		o.MaxAlerts = d.MaxAlerts
	}
	if o.MaxItems == 0 {
		o.MaxItems = d.MaxItems
	}
	return o
}
