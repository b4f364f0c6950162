package dashboard

import (
	"fmt"
	"time"

	"textlab/internal/detect"
)

type ProgressFn func(percent int, stage, detail string)

func progress(on ProgressFn, percent int, stage, detail string) {
	if on == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	on(percent, stage, detail)
}

type LogLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type Span struct {
	Text       string  `json:"text"`
	Perplexity float64 `json:"perplexity"`
	Class      string  `json:"class"`
	Tooltip    string  `json:"tooltip"`
}

type Chart struct {
	Values    []float64 `json:"values"`
	AIZoneMax float64   `json:"aiZoneMax"`
}

type Bin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

type Histogram struct {
	Bins []Bin `json:"bins"`
}

// Data is the full payload the demo page renders: the verdict card, the
// highlight pane, both charts, the stat cards and the pipeline log.
type Data struct {
	RunID              string    `json:"runId"`
	Mode               string    `json:"mode"`
	Probability        float64   `json:"probability"`
	Verdict            string    `json:"verdict"`
	VerdictClass       string    `json:"verdictClass"`
	Burstiness         float64   `json:"burstiness"`
	SentenceCount      int       `json:"sentenceCount"`
	CharCount          int       `json:"charCount"`
	MeanSentenceLength float64   `json:"meanSentenceLength"`
	Highlights         []Span    `json:"highlights"`
	PerplexityChart    Chart     `json:"perplexityChart"`
	LengthHistogram    Histogram `json:"lengthHistogram"`
	Recommendation     string    `json:"recommendation"`
	Note               string    `json:"note,omitempty"`
	Logs               []LogLine `json:"logs"`
	ElapsedMs          int64     `json:"elapsedMs"`
}

// Highlight thresholds on the synthetic perplexity value. Low perplexity
// reads as AI-like, high as human-like, the middle stays unmarked.
const (
	aiPerplexityMax    = 15.0
	humanPerplexityMin = 25.0
)

const (
	histogramBins = 10
	shortInputLen = 100
)

// Builder assembles demo payloads. The zero value analyzes with default
// settings, a shared random source and no logging.
type Builder struct {
	Detect  detect.Config
	Sampler detect.Sampler
	Logger  detect.Logger
}

type buildLogger struct {
	addLog func(level, stage, message, detail string)
}

func (l buildLogger) Log(level, stage, message, detail string) {
	l.addLog(level, stage, message, detail)
}

// Build runs the scoring pipeline on in and derives everything the page
// shows. It returns nil for empty input, mirroring the pipeline itself.
// onProgress, when non-nil, receives coarse stage percentages.
func (b Builder) Build(in detect.Input, onProgress ProgressFn) *Data {
	cfg := b.Detect
	if cfg == (detect.Config{}) {
		cfg = detect.DefaultConfig()
	}

	logs := []LogLine{}
	addLog := func(level, stage, message, detail string) {
		if b.Logger != nil {
			b.Logger.Log(level, stage, message, detail)
		}
		logs = append(logs, LogLine{
			Time:    time.Now().Format("15:04:05.000"),
			Level:   level,
			Stage:   stage,
			Message: message,
			Detail:  detail,
		})
	}

	progress(onProgress, 5, "INPUT", "Validating input")
	report := detect.Analyze(in, cfg, b.Sampler, buildLogger{addLog: addLog})
	if report == nil {
		return nil
	}
	progress(onProgress, 40, "ANALYZE", fmt.Sprintf("%d sentences scored", report.Stats.SentenceCount))

	data := &Data{
		RunID:              report.RunID,
		Mode:               report.Mode,
		Probability:        report.AIProbability,
		Verdict:            string(report.Verdict),
		Burstiness:         report.Burstiness,
		SentenceCount:      report.Stats.SentenceCount,
		CharCount:          report.Stats.CharCount,
		MeanSentenceLength: report.Stats.AvgSentenceLen,
	}
	data.VerdictClass = "human"
	if report.Verdict == detect.VerdictAI {
		data.VerdictClass = "ai"
	}

	data.Highlights = highlightSpans(report.Sentences, report.PerplexityTrend)
	progress(onProgress, 60, "HIGHLIGHT", fmt.Sprintf("%d spans classified", len(data.Highlights)))

	data.PerplexityChart = Chart{Values: report.PerplexityTrend, AIZoneMax: aiPerplexityMax}
	data.LengthHistogram = lengthHistogram(report.SentenceLengths)
	progress(onProgress, 80, "CHARTS", fmt.Sprintf("%d histogram bins", len(data.LengthHistogram.Bins)))

	data.Recommendation = recommendation(report.Verdict)
	if report.Stats.CharCount < shortInputLen {
		data.Note = fmt.Sprintf("Input is %d characters; samples under %d characters make every statistical signal unstable, so read this result as illustrative only.",
			report.Stats.CharCount, shortInputLen)
	}
	addLog("INFO", "REPORT", "Dashboard assembled", fmt.Sprintf("run=%s verdict=%s", report.RunID, report.Verdict))
	data.Logs = logs
	data.ElapsedMs = report.ElapsedMs
	progress(onProgress, 100, "REPORT", "Analysis complete")
	return data
}

func highlightSpans(sentences []string, perplexity []float64) []Span {
	spans := make([]Span, 0, len(sentences))
	for i, s := range sentences {
		pp := perplexity[i]
		span := Span{Text: s, Perplexity: pp, Tooltip: "Neutral"}
		switch {
		case pp < aiPerplexityMax:
			span.Class = "highlight-ai"
			span.Tooltip = fmt.Sprintf("Low Perplexity (%.1f)", pp)
		case pp > humanPerplexityMin:
			span.Class = "highlight-human"
			span.Tooltip = fmt.Sprintf("High Perplexity (%.1f)", pp)
		}
		spans = append(spans, span)
	}
	return spans
}

func lengthHistogram(lengths []int) Histogram {
	if len(lengths) == 0 {
		return Histogram{Bins: []Bin{}}
	}
	lo, hi := lengths[0], lengths[0]
	for _, n := range lengths[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if lo == hi {
		return Histogram{Bins: []Bin{{From: float64(lo), To: float64(hi), Count: len(lengths)}}}
	}
	width := float64(hi-lo) / histogramBins
	bins := make([]Bin, histogramBins)
	for i := range bins {
		bins[i] = Bin{From: float64(lo) + float64(i)*width, To: float64(lo) + float64(i+1)*width}
	}
	for _, n := range lengths {
		idx := int(float64(n-lo) / width)
		if idx >= histogramBins {
			idx = histogramBins - 1
		}
		bins[idx].Count++
	}
	return Histogram{Bins: bins}
}

func recommendation(verdict detect.Verdict) string {
	if verdict == detect.VerdictAI {
		return "Low rhythmic variation and a smooth, compressed perplexity curve are the patterns this demo associates with machine-generated prose. " +
			"Review the highlighted sentences, vary sentence length and structure, and add concrete detail only the author could know. " +
			"Treat the score as a teaching aid, not as proof of authorship."
	}
	return "Sentence rhythm and perplexity spread look like natural writing: lengths vary and the series shows genuine spikes. " +
		"Keep in mind that very short samples weaken every signal used here, so prefer passages of several sentences when comparing texts. " +
		"Treat the score as a teaching aid, not as proof of authorship."
}
