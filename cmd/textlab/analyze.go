package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"textlab/internal/dashboard"
	"textlab/internal/detect"
	"textlab/internal/ingest"
)

var (
	analyzeTextFlag = &cli.StringFlag{
		Name:  "text",
		Usage: "Text to analyze (reads stdin when neither --text nor --file is set)",
	}

	analyzeFileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to a .txt, .md, .pdf or .docx file to analyze",
	}

	analyzeModeFlag = &cli.StringFlag{
		Name:  "mode",
		Usage: fmt.Sprintf("Detection mode (%s)", strings.Join(detect.Modes(), ", ")),
	}

	analyzeSeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the synthetic perplexity sampler, makes runs reproducible",
	}

	analyzeFormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
		Value: formatText,
	}

	analyzeCmd = &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Analyze a text and print the verdict",
		Action:  cmdAnalyze,
		Flags: []cli.Flag{
			analyzeTextFlag,
			analyzeFileFlag,
			analyzeModeFlag,
			analyzeSeedFlag,
			analyzeFormatFlag,
		},
	}
)

func cmdAnalyze(c *cli.Context) error {
	text, err := resolveInput(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return cli.Exit("input required", 1)
	}

	builder := dashboard.Builder{Logger: stageLogger{}}
	if c.IsSet(analyzeSeedFlag.Name) {
		builder.Sampler = detect.NewSeededSampler(c.Int64(analyzeSeedFlag.Name))
	}

	data := builder.Build(detect.Input{Text: text, Mode: c.String(analyzeModeFlag.Name)}, nil)
	if data == nil {
		return cli.Exit("input required", 1)
	}

	format := c.String(analyzeFormatFlag.Name)
	if format == formatText {
		fmt.Print(formatTextReport(data))
		return nil
	}
	return encode(format, data)
}

func resolveInput(c *cli.Context) (string, error) {
	if c.IsSet(analyzeTextFlag.Name) {
		return c.String(analyzeTextFlag.Name), nil
	}
	if c.IsSet(analyzeFileFlag.Name) {
		text, err := ingest.ExtractFile(c.String(analyzeFileFlag.Name))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", c.String(analyzeFileFlag.Name), err)
		}
		return text, nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), nil
}

func formatTextReport(data *dashboard.Data) string {
	var aiLike, humanLike int
	for _, span := range data.Highlights {
		switch span.Class {
		case "highlight-ai":
			aiLike++
		case "highlight-human":
			humanLike++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Verdict:        %s (%.1f%% AI probability)\n", data.Verdict, data.Probability)
	fmt.Fprintf(&b, "Mode:           %s\n", data.Mode)
	fmt.Fprintf(&b, "Burstiness:     %.2f\n", data.Burstiness)
	fmt.Fprintf(&b, "Sentences:      %d (mean length %.1f chars)\n", data.SentenceCount, data.MeanSentenceLength)
	fmt.Fprintf(&b, "Characters:     %d\n", data.CharCount)
	fmt.Fprintf(&b, "Flagged:        %d AI-like, %d human-like, %d neutral\n",
		aiLike, humanLike, data.SentenceCount-aiLike-humanLike)
	if data.Note != "" {
		fmt.Fprintf(&b, "Note:           %s\n", data.Note)
	}
	fmt.Fprintf(&b, "\n%s\n", data.Recommendation)
	return b.String()
}
