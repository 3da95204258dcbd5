package sweep

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/listbench/internal/core/syncset"
)

// Report is the outcome of a sweep.
type Report struct {
	ID      string       `yaml:"id"`
	Samples int          `yaml:"samples"`
	Seed    uint64       `yaml:"seed"`
	Cases   []CaseReport `yaml:"cases"`
}

// CaseReport holds every strategy measured for one case.
type CaseReport struct {
	Name       string   `yaml:"name"`
	Initial    int      `yaml:"initial"`
	Operations int      `yaml:"operations"`
	Member     float64  `yaml:"member"`
	Insert     float64  `yaml:"insert"`
	Delete     float64  `yaml:"delete"`
	Series     []Series `yaml:"series"`
}

// Series is one strategy across its worker counts.
type Series struct {
	Strategy     string        `yaml:"strategy"`
	Measurements []Measurement `yaml:"measurements"`
}

// Measurement summarizes the samples taken at one worker count.
type Measurement struct {
	Threads int `yaml:"threads"`
	Summary `yaml:",inline"`

	SamplesMS []float64 `yaml:"samples_ms,omitempty"`
}

var seriesTitles = map[string][2]string{
	syncset.StrategyUnsynchronized.String(): {"Serial Linked List", "Serial"},
	syncset.StrategyExclusive.String():      {"Mutex Linked List", "Mutex"},
	syncset.StrategyReadWrite.String():      {"ReadWrite Linked List", "RWLock"},
}

// WriteText renders the report as a human readable listing.
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}

	for _, c := range r.Cases {
		ew.printf("=============== %s ===============\n", c.Name)
		for _, s := range c.Series {
			title, label := s.Strategy, s.Strategy
			if t, ok := seriesTitles[s.Strategy]; ok {
				title, label = t[0], t[1]
			}

			ew.printf("%s\n=======\n", title)
			perThread := s.Strategy != syncset.StrategyUnsynchronized.String()
			for _, m := range s.Measurements {
				if perThread {
					ew.printf("%s - Number of Threads: %d\n", label, m.Threads)
				}
				ew.printf("Average: %.4f\n", m.Mean)
				ew.printf("Standard Deviation: %.4f\n", m.StdDev)
				ew.printf("Required Samples: %d\n", m.RequiredSamples)
				if perThread {
					ew.printf("\n")
				}
			}
			ew.printf("\n")
		}
	}

	return ew.err
}

// WriteYAML encodes the report, per-sample timings included.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// Mean looks up the mean elapsed milliseconds of one measurement.
func (r *Report) Mean(caseName, strategy string, threads int) (float64, bool) {
	for _, c := range r.Cases {
		if c.Name != caseName {
			continue
		}
		for _, s := range c.Series {
			if s.Strategy != strategy {
				continue
			}
			for _, m := range s.Measurements {
				if m.Threads == threads {
					return m.Mean, true
				}
			}
		}
	}
	return 0, false
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
