package chunker

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

func newTestChunker(cfg config.ChunkingConfig) Chunker {
	est := tokenizer.NewHeuristic(tokenizer.ConservativeCharsPerToken)
	return New(cfg, est, logger.New("error"))
}

func testConfig() config.ChunkingConfig {
	return config.ChunkingConfig{
		ChunkSizeTokens: 100, // 300 chars
		OverlapTokens:   20,  // 60 chars
		CharsPerToken:   3,
		SearchRadius:    25,
		ThresholdTokens: 200,
	}
}

// paragraphText builds n paragraphs of repeated words separated by blank lines.
func paragraphText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(strings.Repeat("alpha beta gamma delta ", 4))
		sb.WriteString("end of paragraph.")
		if i+1 < n {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func TestChunkEmptyText(t *testing.T) {
	c := newTestChunker(testConfig())
	if chunks := c.Chunk(context.Background(), ""); len(chunks) != 0 {
		t.Errorf("Chunk(\"\") returned %d chunks, want 0", len(chunks))
	}
}

func TestChunkShortText(t *testing.T) {
	c := newTestChunker(testConfig())
	text := "Alice: welcome everyone.\nBob: thanks for joining."

	chunks := c.Chunk(context.Background(), text)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}

	ch := chunks[0]
	if ch.HasNext {
		t.Error("single chunk should have HasNext=false")
	}
	if ch.OverlapText != "" {
		t.Errorf("single chunk should have empty overlap, got %q", ch.OverlapText)
	}
	if ch.Text != text {
		t.Error("single chunk text should equal the input")
	}
	if ch.StartOffset != 0 || ch.EndOffset != len(text) {
		t.Errorf("offsets = [%d,%d), want [0,%d)", ch.StartOffset, ch.EndOffset, len(text))
	}
}

func TestChunkLongTextProducesOverlappingChunks(t *testing.T) {
	c := newTestChunker(testConfig())
	text := paragraphText(20)

	chunks := c.Chunk(context.Background(), text)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}

	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has Index %d", i, ch.Index)
		}
		if ch.Text != text[ch.StartOffset:ch.EndOffset] {
			t.Errorf("chunk %d text does not match its offsets", i)
		}
		last := i == len(chunks)-1
		if ch.HasNext == last {
			t.Errorf("chunk %d HasNext = %v", i, ch.HasNext)
		}
		if !last {
			if ch.OverlapText == "" {
				t.Errorf("chunk %d should carry overlap text", i)
			}
			if !strings.HasSuffix(ch.Text, ch.OverlapText) {
				t.Errorf("chunk %d overlap is not a suffix of its text", i)
			}
			// The next chunk must start inside or at the end of this chunk.
			if chunks[i+1].StartOffset > ch.EndOffset {
				t.Errorf("gap between chunk %d (end %d) and chunk %d (start %d)",
					i, ch.EndOffset, i+1, chunks[i+1].StartOffset)
			}
		}
	}

	if chunks[0].StartOffset != 0 {
		t.Error("first chunk must start at offset 0")
	}
	if chunks[len(chunks)-1].EndOffset != len(text) {
		t.Error("last chunk must end at the text end")
	}
}

func TestChunkReconstruction(t *testing.T) {
	c := newTestChunker(testConfig())
	text := paragraphText(25)

	chunks := c.Chunk(context.Background(), text)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}

	// Stitching chunk texts back together while dropping the duplicated
	// overlap prefix must reproduce the input exactly.
	rebuilt := chunks[0].Text
	prevEnd := chunks[0].EndOffset
	for _, ch := range chunks[1:] {
		skip := prevEnd - ch.StartOffset
		if skip < 0 {
			t.Fatalf("chunk %d does not overlap or touch its predecessor", ch.Index)
		}
		rebuilt += ch.Text[skip:]
		prevEnd = ch.EndOffset
	}

	if rebuilt != text {
		t.Errorf("reconstruction mismatch: got %d chars, want %d", len(rebuilt), len(text))
	}
}

func TestChunkPrefersParagraphBreak(t *testing.T) {
	cfg := testConfig()
	c := newTestChunker(cfg)

	// Place a paragraph break a few characters before the 300-char target so
	// the backward search finds it.
	line := strings.Repeat("x", 290)
	text := line + "\n\n" + strings.Repeat("y", 400)

	chunks := c.Chunk(context.Background(), text)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}
	if chunks[0].EndOffset != len(line)+2 {
		t.Errorf("first chunk ends at %d, want %d (just past the blank line)",
			chunks[0].EndOffset, len(line)+2)
	}
}

func TestChunkFallsBackToRawOffset(t *testing.T) {
	cfg := testConfig()
	c := newTestChunker(cfg)

	// No newline anywhere: the break search must give up and cut at the
	// numeric target.
	text := strings.Repeat("z", 700)
	chunks := c.Chunk(context.Background(), text)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}
	if chunks[0].EndOffset != cfg.ChunkSizeTokens*cfg.CharsPerToken {
		t.Errorf("first chunk ends at %d, want raw target %d",
			chunks[0].EndOffset, cfg.ChunkSizeTokens*cfg.CharsPerToken)
	}
}

func TestNeedsChunking(t *testing.T) {
	cfg := testConfig()
	c := newTestChunker(cfg)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"small text", strings.Repeat("a", 60), false},
		{"exactly at threshold", strings.Repeat("a", cfg.ThresholdTokens*cfg.CharsPerToken), false},
		{"over threshold", strings.Repeat("a", (cfg.ThresholdTokens+1)*cfg.CharsPerToken), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.NeedsChunking(tt.text); got != tt.want {
				t.Errorf("NeedsChunking() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetadata(t *testing.T) {
	cfg := testConfig()
	c := newTestChunker(cfg)
	text := paragraphText(20)

	chunks := c.Chunk(context.Background(), text)
	meta := c.Metadata("meeting-1", text, chunks)

	if meta.MeetingID != "meeting-1" {
		t.Errorf("MeetingID = %q", meta.MeetingID)
	}
	if meta.ChunkCount != len(chunks) {
		t.Errorf("ChunkCount = %d, want %d", meta.ChunkCount, len(chunks))
	}
	if meta.TotalChars != len(text) {
		t.Errorf("TotalChars = %d, want %d", meta.TotalChars, len(text))
	}
	if meta.Params.ChunkSizeTokens != cfg.ChunkSizeTokens {
		t.Errorf("Params.ChunkSizeTokens = %d, want %d", meta.Params.ChunkSizeTokens, cfg.ChunkSizeTokens)
	}
	for i, info := range meta.Chunks {
		if info.StartOffset != chunks[i].StartOffset || info.EndOffset != chunks[i].EndOffset {
			t.Errorf("chunk info %d offsets do not match chunk", i)
		}
	}
}

func TestMetadataSerializesSnakeCase(t *testing.T) {
	cfg := testConfig()
	c := newTestChunker(cfg)
	text := paragraphText(20)

	meta := c.Metadata("meeting-1", text, c.Chunk(context.Background(), text))

	raw, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal metadata: %v", err)
	}

	for _, key := range []string{
		`"meeting_id"`,
		`"chunking_params"`,
		`"chunk_size_tokens"`,
		`"overlap_tokens"`,
		`"chars_per_token"`,
		`"chunk_index"`,
	} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("metadata JSON missing key %s", key)
		}
	}
	if strings.Contains(string(raw), `"ChunkSizeTokens"`) {
		t.Error("chunking params serialized with Go field names")
	}
}
