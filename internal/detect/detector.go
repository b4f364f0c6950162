package detect

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type Input struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type Stats struct {
	SentenceCount  int     `json:"sentence_count"`
	CharCount      int     `json:"char_count"`
	AvgSentenceLen float64 `json:"avg_sentence_len"`
}

type StageTrace struct {
	Name       string `json:"name"`
	DurationMs int64  `json:"duration_ms"`
}

// Report is the complete result of one analysis. It is built once per call
// and never mutated or persisted afterwards. Sentences, SentenceLengths and
// PerplexityTrend always have equal length.
type Report struct {
	RunID           string       `json:"run_id"`
	Mode            string       `json:"mode"`
	AIProbability   float64      `json:"ai_probability"`
	Verdict         Verdict      `json:"verdict"`
	Burstiness      float64      `json:"burstiness"`
	PerplexityTrend []float64    `json:"perplexity_trend"`
	Sentences       []string     `json:"sentences"`
	SentenceLengths []int        `json:"sentence_lengths"`
	Stats           Stats        `json:"stats"`
	Traces          []StageTrace `json:"traces"`
	ElapsedMs       int64        `json:"elapsed_ms"`
}

// Config carries the synthetic-perplexity shape. The defaults are the
// demo's published constants; the env overrides exist for experimentation
// and leave behavior unchanged when unset.
type Config struct {
	BasePerplexity float64
	ShortLen       int
	LongLen        int
	OutlierMult    float64
	NormalMult     float64
	JitterLow      float64
	JitterHigh     float64
}

type Logger interface {
	Log(level, stage, message, detail string)
}

type nopLogger struct{}

func (nopLogger) Log(level, stage, message, detail string) {}

func DefaultConfig() Config {
	return Config{
		BasePerplexity: getenvFloat("TEXTLAB_PP_BASE", 10),
		ShortLen:       getenvInt("TEXTLAB_PP_SHORT_LEN", 5),
		LongLen:        getenvInt("TEXTLAB_PP_LONG_LEN", 80),
		OutlierMult:    getenvFloat("TEXTLAB_PP_OUTLIER_MULT", 2.5),
		NormalMult:     getenvFloat("TEXTLAB_PP_NORMAL_MULT", 1.2),
		JitterLow:      getenvFloat("TEXTLAB_PP_JITTER_LOW", 0.8),
		JitterHigh:     getenvFloat("TEXTLAB_PP_JITTER_HIGH", 1.5),
	}
}

// Detection mode labels. The mode is carried through to the report as
// presentation metadata; it never changes the computation.
const (
	ModeStandard     = "Standard (Statistical)"
	ModeAdvanced     = "Advanced (BERT-Hybrid)"
	ModeExperimental = "Experimental (Stylometry)"
)

func Modes() []string {
	return []string{ModeStandard, ModeAdvanced, ModeExperimental}
}

func NormalizeMode(mode string) string {
	mode = strings.TrimSpace(mode)
	for _, m := range Modes() {
		if strings.EqualFold(mode, m) {
			return m
		}
	}
	return ModeStandard
}

// Analyze runs the full pipeline: segment, extract features, score.
// Empty or whitespace-only input returns nil with no computation performed;
// that is the defined empty outcome, not a failure. A nil sampler falls back
// to the process-global random source, a nil logger discards stage logs.
func Analyze(in Input, cfg Config, sampler Sampler, logger Logger) *Report {
	if logger == nil {
		logger = nopLogger{}
	}
	trimmed := strings.TrimSpace(in.Text)
	if trimmed == "" {
		return nil
	}

	started := time.Now()
	report := &Report{
		RunID:  "run-" + started.Format("20060102-150405.000"),
		Mode:   NormalizeMode(in.Mode),
		Traces: []StageTrace{},
	}
	logger.Log("INFO", "INPUT", "analysis started",
		fmt.Sprintf("run=%s mode=%s chars=%d", report.RunID, report.Mode, utf8.RuneCountInString(in.Text)))

	var sentences []string
	withSpan(report, "segment", func() {
		sentences = Segment(trimmed)
	})
	logger.Log("INFO", "SEGMENT", "sentences extracted", fmt.Sprintf("count=%d", len(sentences)))

	var feats Features
	withSpan(report, "features", func() {
		feats = ExtractFeatures(sentences, cfg, sampler)
	})
	logger.Log("INFO", "FEATURES", "features computed",
		fmt.Sprintf("burstiness=%.3f mean_len=%.1f pp_variance=%.2f", feats.Burstiness, feats.MeanLength, feats.PerplexityVariance))

	withSpan(report, "score", func() {
		report.AIProbability, report.Verdict = Score(feats.Burstiness, feats.PerplexityVariance)
	})

	report.Burstiness = feats.Burstiness
	report.PerplexityTrend = feats.Perplexity
	report.Sentences = sentences
	report.SentenceLengths = feats.Lengths
	report.Stats = Stats{
		SentenceCount:  len(sentences),
		CharCount:      utf8.RuneCountInString(in.Text),
		AvgSentenceLen: feats.MeanLength,
	}
	report.ElapsedMs = time.Since(started).Milliseconds()
	logger.Log("INFO", "SCORE", "verdict ready",
		fmt.Sprintf("run=%s probability=%.1f verdict=%s", report.RunID, report.AIProbability, report.Verdict))
	return report
}

func withSpan(report *Report, name string, fn func()) {
	start := time.Now()
	fn()
	report.Traces = append(report.Traces, StageTrace{
		Name:       name,
		DurationMs: time.Since(start).Milliseconds(),
	})
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
