package detect

import (
	"math"
	"unicode/utf8"
)

// Features holds the per-sentence and aggregate measurements the scorer
// consumes. Lengths and Perplexity are index-aligned with the sentence
// sequence they were extracted from.
type Features struct {
	Lengths            []int
	MeanLength         float64
	Burstiness         float64
	Perplexity         []float64
	PerplexityVariance float64
}

// ExtractFeatures computes sentence-length statistics and the synthetic
// perplexity series. An empty sentence sequence yields zero aggregates and
// empty series rather than an error.
func ExtractFeatures(sentences []string, cfg Config, sampler Sampler) Features {
	if sampler == nil {
		sampler = defaultSampler{}
	}
	f := Features{
		Lengths:    make([]int, 0, len(sentences)),
		Perplexity: make([]float64, 0, len(sentences)),
	}
	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		n := utf8.RuneCountInString(s)
		f.Lengths = append(f.Lengths, n)
		lengths = append(lengths, float64(n))
		f.Perplexity = append(f.Perplexity, syntheticPerplexity(n, cfg, sampler))
	}
	mean, sd := meanStd(lengths)
	f.MeanLength = mean
	if mean > 0 {
		f.Burstiness = sd / mean
	}
	_, ppSD := meanStd(f.Perplexity)
	f.PerplexityVariance = ppSD * ppSD
	return f
}

// syntheticPerplexity fabricates a perplexity value from the sentence length
// alone: very short and very long sentences read as "surprising", everything
// else sits near the base, and a uniform jitter draw keeps the series from
// being flat. It is a visualization driver, not a measurement.
func syntheticPerplexity(length int, cfg Config, sampler Sampler) float64 {
	mult := cfg.NormalMult
	if length < cfg.ShortLen || length > cfg.LongLen {
		mult = cfg.OutlierMult
	}
	jitter := cfg.JitterLow + (cfg.JitterHigh-cfg.JitterLow)*sampler.Float64()
	return cfg.BasePerplexity * mult * jitter
}

// meanStd returns the mean and population standard deviation.
func meanStd(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
