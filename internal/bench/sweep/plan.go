package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/core/syncset"
)

// Plan validation errors, matched with errors.Is.
var (
	ErrEmptyPlan      = errors.New("plan has no cases")
	ErrInvalidSamples = errors.New("samples must be positive")
	ErrNoThreads      = errors.New("case has no thread counts")
)

// DefaultSamples is the number of runs averaged per measurement.
const DefaultSamples = 100

// DefaultThreads are the worker counts swept for the locked strategies.
var DefaultThreads = []int{1, 2, 4, 8}

// Plan lists the cases a sweep measures.
type Plan struct {
	Samples int    `yaml:"samples"`
	Cases   []Case `yaml:"cases"`
}

// Case is one operation mix. The unsynchronized strategy always runs with one
// worker; the others run once per entry in Threads.
type Case struct {
	Name       string   `yaml:"name"`
	Initial    int      `yaml:"initial"`
	Operations int      `yaml:"operations"`
	Member     float64  `yaml:"member"`
	Insert     float64  `yaml:"insert"`
	Delete     float64  `yaml:"delete"`
	Threads    []int    `yaml:"threads,omitempty"`
	Strategies []string `yaml:"strategies,omitempty"`
}

// DefaultPlan returns the three read/write mixes over 1000 initial values and
// 10000 operations.
func DefaultPlan() Plan {
	mixes := [][3]float64{
		{0.99, 0.005, 0.005},
		{0.9, 0.05, 0.05},
		{0.5, 0.25, 0.25},
	}

	plan := Plan{Samples: DefaultSamples}
	for i, mix := range mixes {
		plan.Cases = append(plan.Cases, Case{
			Name:       fmt.Sprintf("CASE %d", i+1),
			Initial:    1000,
			Operations: 10000,
			Member:     mix[0],
			Insert:     mix[1],
			Delete:     mix[2],
			Threads:    DefaultThreads,
		})
	}
	return plan
}

// LoadPlan reads a YAML plan from path. Missing samples and thread lists fall
// back to the defaults.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(raw)
}

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(raw []byte) (Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}

	if plan.Samples == 0 {
		plan.Samples = DefaultSamples
	}
	for i := range plan.Cases {
		if plan.Cases[i].Threads == nil {
			plan.Cases[i].Threads = DefaultThreads
		}
		if plan.Cases[i].Name == "" {
			plan.Cases[i].Name = fmt.Sprintf("CASE %d", i+1)
		}
	}

	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// Validate checks every configuration the plan would run.
func (p Plan) Validate() error {
	if p.Samples < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, p.Samples)
	}
	if len(p.Cases) == 0 {
		return ErrEmptyPlan
	}

	var errs []error
	for _, c := range p.Cases {
		strategies, err := c.strategies()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}
		if len(c.Threads) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, ErrNoThreads))
			continue
		}
		for _, strategy := range strategies {
			for _, workers := range c.workers(strategy) {
				if err = c.config(workers).Validate(strategy); err != nil {
					errs = append(errs, fmt.Errorf("%s/%s/%d: %w", c.Name, strategy, workers, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (c Case) strategies() ([]syncset.Strategy, error) {
	if len(c.Strategies) == 0 {
		return syncset.Strategies, nil
	}

	out := make([]syncset.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := syncset.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (c Case) workers(strategy syncset.Strategy) []int {
	if strategy == syncset.StrategyUnsynchronized {
		return []int{1}
	}
	return c.Threads
}

func (c Case) config(workers int) config.BenchmarkConfig {
	return config.BenchmarkConfig{
		InitialCount:    c.Initial,
		TotalOperations: c.Operations,
		MemberFraction:  c.Member,
		InsertFraction:  c.Insert,
		DeleteFraction:  c.Delete,
		Workers:         workers,
	}
}
