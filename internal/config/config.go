package config

import "fmt"

type Config struct {
	TimeZone    string            `yaml:"time_zone"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Merge       MergeConfig       `yaml:"merge"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// ChunkingConfig also serializes into the chunk metadata audit record, so it
// carries json tags alongside the yaml ones.
type ChunkingConfig struct {
	ChunkSizeTokens int `yaml:"chunk_size_tokens" json:"chunk_size_tokens"`
	OverlapTokens   int `yaml:"overlap_tokens" json:"overlap_tokens"`
	CharsPerToken   int `yaml:"chars_per_token" json:"chars_per_token"`
	SearchRadius    int `yaml:"search_radius" json:"search_radius"`
	ThresholdTokens int `yaml:"threshold_tokens" json:"threshold_tokens"`
}

type MergeConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxWindowTurns      int     `yaml:"max_window_turns"`
	AvgTurnChars        int     `yaml:"avg_turn_chars"`
}

type SegmenterConfig struct {
	MaxTokensPerSegment int `yaml:"max_tokens_per_segment"`
}

type GeminiConfig struct {
	Model     string `yaml:"model"`
	Encoding  string `yaml:"encoding"`
	MaxTokens int    `yaml:"max_tokens"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Chunking.OverlapTokens >= c.Chunking.ChunkSizeTokens && c.Chunking.ChunkSizeTokens != 0 {
		return fmt.Errorf("chunking.overlap_tokens must be smaller than chunking.chunk_size_tokens")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Chunking.ChunkSizeTokens == 0 {
		c.Chunking.ChunkSizeTokens = 15000
	}
	if c.Chunking.OverlapTokens == 0 {
		c.Chunking.OverlapTokens = 2000
	}
	if c.Chunking.CharsPerToken == 0 {
		c.Chunking.CharsPerToken = 3
	}
	if c.Chunking.SearchRadius == 0 {
		c.Chunking.SearchRadius = 500
	}
	if c.Chunking.ThresholdTokens == 0 {
		c.Chunking.ThresholdTokens = 50000
	}
	if c.Merge.SimilarityThreshold == 0 {
		c.Merge.SimilarityThreshold = 0.75
	}
	if c.Merge.MaxWindowTurns == 0 {
		c.Merge.MaxWindowTurns = 50
	}
	if c.Merge.AvgTurnChars == 0 {
		c.Merge.AvgTurnChars = 200
	}
	if c.Segmenter.MaxTokensPerSegment == 0 {
		c.Segmenter.MaxTokensPerSegment = 3000
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Encoding == "" {
		c.Gemini.Encoding = "cl100k_base"
	}
	if c.Gemini.MaxTokens == 0 {
		c.Gemini.MaxTokens = 100000
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.TimeZone == "" {
		c.TimeZone = "America/New_York"
	}

	return nil
}
