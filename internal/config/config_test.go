package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input path",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Paths: PathsConfig{
					Input: "data/input",
				},
			},
			wantErr: true,
		},
		{
			name: "overlap larger than chunk size",
			config: Config{
				Chunking: ChunkingConfig{
					ChunkSizeTokens: 1000,
					OverlapTokens:   2000,
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Chunking.ChunkSizeTokens != 15000 {
		t.Errorf("ChunkSizeTokens = %d, want 15000", cfg.Chunking.ChunkSizeTokens)
	}
	if cfg.Chunking.OverlapTokens != 2000 {
		t.Errorf("OverlapTokens = %d, want 2000", cfg.Chunking.OverlapTokens)
	}
	if cfg.Chunking.CharsPerToken != 3 {
		t.Errorf("CharsPerToken = %d, want 3", cfg.Chunking.CharsPerToken)
	}
	if cfg.Merge.SimilarityThreshold != 0.75 {
		t.Errorf("SimilarityThreshold = %v, want 0.75", cfg.Merge.SimilarityThreshold)
	}
	if cfg.Segmenter.MaxTokensPerSegment != 3000 {
		t.Errorf("MaxTokensPerSegment = %d, want 3000", cfg.Segmenter.MaxTokensPerSegment)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
chunking:
  chunk_size_tokens: 12000
  overlap_tokens: 1500

segmenter:
  max_tokens_per_segment: 2500

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chunking.ChunkSizeTokens != 12000 {
		t.Errorf("ChunkSizeTokens = %d, want %d", cfg.Chunking.ChunkSizeTokens, 12000)
	}

	if cfg.Segmenter.MaxTokensPerSegment != 2500 {
		t.Errorf("MaxTokensPerSegment = %d, want %d", cfg.Segmenter.MaxTokensPerSegment, 2500)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
