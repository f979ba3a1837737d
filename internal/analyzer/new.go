package analyzer

import (
	"sync"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
)

type implAnalyzer struct {
	apiKeys   []string
	model     string
	maxTokens int
	logger    logger.Logger

	// currentKey is shared by concurrent per-chunk extraction calls.
	mu         sync.Mutex
	currentKey int
}

// New creates an Analyzer that rotates through the supplied Gemini API keys
// when one is throttled.
func New(cfg config.GeminiConfig, apiKeys []string, log logger.Logger) Analyzer {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implAnalyzer{
		apiKeys:   apiKeys,
		model:     model,
		maxTokens: cfg.MaxTokens,
		logger:    log,
	}
}

// activeKey returns the key currently in rotation and its index.
func (a *implAnalyzer) activeKey() (string, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.apiKeys[a.currentKey], a.currentKey
}

func (a *implAnalyzer) rotateKey() {
	a.mu.Lock()
	a.currentKey = (a.currentKey + 1) % len(a.apiKeys)
	a.mu.Unlock()
}
