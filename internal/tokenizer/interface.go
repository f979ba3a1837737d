package tokenizer

// Estimator reports how many tokens a piece of text consumes. Implementations
// may be exact (a real tokenizer) or heuristic (a characters-per-token ratio).
type Estimator interface {
	Estimate(text string) int
}
