package main

import (
	"strings"
	"testing"

	"textlab/internal/dashboard"
	"textlab/internal/detect"
)

func TestNewApp(t *testing.T) {
	app := newApp()
	if app.Name != "textlab" {
		t.Fatalf("app name = %q", app.Name)
	}
	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	for _, want := range []string{"serve", "analyze"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing command %q in %v", want, names)
		}
	}
}

func TestFormatTextReport(t *testing.T) {
	builder := dashboard.Builder{Sampler: detect.NewSeededSampler(7)}
	data := builder.Build(detect.Input{
		Text: "The tide went out before noon. Gulls argued over a stranded crab near the old pier pilings.",
	}, nil)
	if data == nil {
		t.Fatal("expected a report")
	}

	out := formatTextReport(data)
	if !strings.Contains(out, "Verdict:") {
		t.Fatalf("missing verdict line: %q", out)
	}
	if !strings.Contains(out, data.Verdict) {
		t.Fatalf("verdict %q not in output: %q", data.Verdict, out)
	}
	if !strings.Contains(out, "Sentences:      2") {
		t.Fatalf("missing sentence count: %q", out)
	}
	if !strings.Contains(out, "Note:") {
		t.Fatalf("short input should carry a note: %q", out)
	}
	if !strings.Contains(out, data.Recommendation) {
		t.Fatalf("missing recommendation: %q", out)
	}
}

func TestStageLoggerLevels(t *testing.T) {
	// Must not panic on any level string the pipeline emits.
	for _, level := range []string{"INFO", "WARN", "ERROR", "DEBUG", ""} {
		stageLogger{}.Log(level, "SEGMENT", "message", "detail")
	}
}
