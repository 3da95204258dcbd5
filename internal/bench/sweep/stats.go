package sweep

import "math"

// Summary condenses the samples of one measurement.
type Summary struct {
	Mean            float64 `yaml:"mean_ms"`
	StdDev          float64 `yaml:"stddev_ms"`
	RequiredSamples int     `yaml:"required_samples"`
}

// Summarize computes the mean, the sample standard deviation and the number of
// samples needed for a ±5% interval at 95% confidence.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	var s Summary
	s.Mean = mean
	if len(samples) < 2 {
		return s
	}

	var sq float64
	for _, x := range samples {
		sq += (x - mean) * (x - mean)
	}
	s.StdDev = math.Sqrt(sq / float64(len(samples)-1))

	if mean > 0 {
		s.RequiredSamples = int(math.Ceil(math.Pow((100*1.96*s.StdDev)/(5*mean), 2)))
	}
	return s
}
