package detect

// Verdict is the binary classification label shown to the user.
type Verdict string

const (
	VerdictAI    Verdict = "AI Generated"
	VerdictHuman Verdict = "Human Written"
)

// Score maps burstiness and perplexity variance to an AI probability on a
// 0-100 scale and a verdict. Pure function of its two inputs.
//
// Low burstiness (uniform sentence rhythm) and a smooth perplexity series
// both push toward AI; burstiness in [0.4, 0.6] is a neutral band. The raw
// score is clamped to [0.01, 0.99] before scaling, so probability stays in
// [1, 99]. Exactly 50 reads as human.
func Score(burstiness, perplexityVariance float64) (float64, Verdict) {
	score := 0.5
	if burstiness < 0.4 {
		score += 0.2
	} else if burstiness > 0.6 {
		score -= 0.2
	}
	if perplexityVariance < 10 {
		score += 0.2
	} else {
		score -= 0.15
	}
	probability := clamp(score, 0.01, 0.99) * 100
	if probability > 50 {
		return probability, VerdictAI
	}
	return probability, VerdictHuman
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
