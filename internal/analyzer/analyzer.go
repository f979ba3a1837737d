package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

const turnsPrompt = `You are a meeting transcript preprocessor. Convert the raw transcript text below
into structured turns with timestamps and speaker labels.

Rules:
- Output valid JSON only, no surrounding prose.
- The JSON object has: meeting_id, time_zone, turns.
- Each turn has: idx, start_ts (HH:MM:SS), end_ts (HH:MM:SS), speaker,
  type (question|answer|followup|monologue|housekeeping),
  question_likelihood (0.0-1.0), text.
- Keep every utterance; never summarize or drop content.

MEETING_ID: %s

TRANSCRIPT:
---
%s
---`

const segmentPrompt = `You are an expert meeting analyst. Given a single meeting segment, extract
actionable insights.

Rules:
- Respond in JSON only, matching this shape: segment_id, key_points, decisions,
  action_items (id, description, owner, due_date), qa_pairs (question, answer,
  asked_by, answered_by), calendar_events (uid, title, start, end, location,
  description).
- Provide concise yet specific bullet lists.
- Only surface information that appears in the segment text.

Segment metadata:
- Segment ID: %d
- Speakers: %s
- Topic: %s

Segment transcript:
---
%s
---`

// ExtractTurns runs the turn-extraction prompt over one chunk of transcript
// text and returns the normalized turns.
func (a *implAnalyzer) ExtractTurns(ctx context.Context, meetingID, chunkText string) ([]transcript.Turn, error) {
	prompt := fmt.Sprintf(turnsPrompt, meetingID, chunkText)

	raw, err := a.callModel(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract turns: %w", err)
	}

	payload, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("extract turns: %w", err)
	}

	var doc transcript.TurnsDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode turns document: %w", err)
	}

	for i := range doc.Turns {
		transcript.NormalizeTurn(&doc.Turns[i])
	}

	a.logger.Debug(ctx, "Extracted %d turns from %d chars of transcript", len(doc.Turns), len(chunkText))
	return doc.Turns, nil
}

// AnalyzeSegment runs the insight-extraction prompt over one segment.
func (a *implAnalyzer) AnalyzeSegment(ctx context.Context, seg transcript.Segment) (*transcript.SegmentAnalysis, error) {
	prompt := fmt.Sprintf(segmentPrompt, seg.ID, strings.Join(seg.Speakers, ", "), seg.Topic, seg.Text)

	raw, err := a.callModel(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyze segment %d: %w", seg.ID, err)
	}

	payload, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("analyze segment %d: %w", seg.ID, err)
	}

	var analysis transcript.SegmentAnalysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return nil, fmt.Errorf("decode segment %d analysis: %w", seg.ID, err)
	}
	analysis.SegmentID = seg.ID

	return &analysis, nil
}

// callModel sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (a *implAnalyzer) callModel(ctx context.Context, prompt string) (string, error) {
	if len(a.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	attempts := len(a.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIdx := a.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			a.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), a.generationConfig())
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				a.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				a.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// generationConfig caps the model response at the configured token budget.
func (a *implAnalyzer) generationConfig() *genai.GenerateContentConfig {
	if a.maxTokens <= 0 {
		return nil
	}
	return &genai.GenerateContentConfig{MaxOutputTokens: int32(a.maxTokens)}
}
