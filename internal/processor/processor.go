package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/exporter"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/validate"
)

// Process runs the whole pipeline for one transcript file: chunk, fan out
// turn extraction, merge, segment, analyze segments, then write artifacts.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	meetingID := meetingIDFrom(transcriptPath)
	prefix := "meetings/" + meetingID + "/"

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing transcript: %s (meeting %s)", transcriptPath, meetingID)
	p.logger.Info(ctx, "========================================")

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	text := string(data)

	manifest := newManifest(meetingID, transcriptPath, len(data))

	// Step 1: chunk (or skip when the transcript fits one analysis call)
	chunks, meta := p.chunkTranscript(ctx, meetingID, text, prefix)
	manifest.Chunked = len(chunks) > 1
	manifest.ChunkCount = len(chunks)

	// Step 2: fan out turn extraction per chunk
	results, err := p.extractAllTurns(ctx, meetingID, chunks, prefix)
	if err != nil {
		return fmt.Errorf("extract turns: %w", err)
	}

	// Step 3: merge chunk results into one turn sequence
	merged, err := p.merger.Merge(ctx, results, meta)
	if err != nil {
		return fmt.Errorf("merge chunks: %w", err)
	}

	turnsDoc := &transcript.TurnsDocument{
		MeetingID: meetingID,
		TimeZone:  p.cfg.TimeZone,
		Turns:     merged,
	}
	p.warnOnInvalid(ctx, manifest, "turns", func() ([]string, error) { return validate.Turns(turnsDoc) })
	if err := p.store.WriteJSON(prefix+"01_turns.json", turnsDoc); err != nil {
		return fmt.Errorf("write turns: %w", err)
	}
	manifest.addArtifact("01_turns.json", "turns", len(merged))

	// Step 4: segment the merged turns
	segments := p.segmenter.Segment(merged)
	segmentsDoc := &validate.SegmentsDocument{MeetingID: meetingID, Segments: segments}
	p.warnOnInvalid(ctx, manifest, "segments", func() ([]string, error) { return validate.Segments(segmentsDoc) })
	if err := p.store.WriteJSON(prefix+"02_segments.json", segmentsDoc); err != nil {
		return fmt.Errorf("write segments: %w", err)
	}
	manifest.addArtifact("02_segments.json", "segments", len(segments))

	// Step 5: per-segment analysis
	analysis := p.analyzeSegments(ctx, meetingID, segments)
	if err := p.store.WriteJSON(prefix+"03_analysis.json", analysis); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	manifest.addArtifact("03_analysis.json", "analysis", len(analysis.SegmentAnalyses))

	// Step 6: exports
	p.export(ctx, manifest, meetingID, prefix, turnsDoc, analysis)

	// Step 7: manifest
	manifest.finish(time.Since(startTime))
	if err := p.store.WriteJSON(prefix+"manifest.json", manifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := p.moveToArchived(transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", transcriptPath, err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Completed meeting %s: %d turns, %d segments in %s",
		meetingID, len(merged), len(segments), time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return nil
}

// chunkTranscript splits the transcript when it exceeds the token threshold.
// Small transcripts become a single whole-text chunk without a chunking pass.
func (p *implProcessor) chunkTranscript(ctx context.Context, meetingID, text, prefix string) ([]chunker.Chunk, chunker.Metadata) {
	var chunks []chunker.Chunk
	if p.chunker.NeedsChunking(text) {
		chunks = p.chunker.Chunk(ctx, text)
		p.logger.Info(ctx, "Chunked %d chars into %d chunks", len(text), len(chunks))

		for _, ch := range chunks {
			key := fmt.Sprintf("%schunks/chunk_%d.txt", prefix, ch.Index)
			if err := p.store.WriteText(key, ch.Text); err != nil {
				p.logger.Warn(ctx, "Failed to write chunk %d: %v", ch.Index, err)
			}
		}
	} else {
		p.logger.Info(ctx, "Transcript is small (%d chars), no chunking needed", len(text))
		chunks = []chunker.Chunk{{Index: 0, Text: text, EndOffset: len(text)}}
	}

	meta := p.chunker.Metadata(meetingID, text, chunks)
	if err := p.store.WriteJSON(prefix+"chunks/metadata.json", meta); err != nil {
		p.logger.Warn(ctx, "Failed to write chunk metadata: %v", err)
	}
	return chunks, meta
}

// extractAllTurns runs the turn-extraction step for every chunk with bounded
// concurrency. Results are keyed by chunk index for the merge pass; the first
// failure wins since the merge cannot proceed with a missing chunk.
func (p *implProcessor) extractAllTurns(ctx context.Context, meetingID string, chunks []chunker.Chunk, prefix string) (map[int][]transcript.Turn, error) {
	results := make(map[int][]transcript.Turn, len(chunks))

	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(chunks))
	sem := make(chan struct{}, p.cfg.Performance.MaxConcurrent)

	for _, ch := range chunks {
		wg.Add(1)
		go func(ch chunker.Chunk) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			turns, err := p.analyzer.ExtractTurns(ctx, meetingID, ch.Text)
			if err != nil {
				errCh <- fmt.Errorf("chunk %d: %w", ch.Index, err)
				return
			}
			p.logger.Info(ctx, "Chunk %d: extracted %d turns", ch.Index, len(turns))

			mu.Lock()
			results[ch.Index] = turns
			mu.Unlock()

			key := fmt.Sprintf("%schunks/chunk_%d_turns.json", prefix, ch.Index)
			if err := p.store.WriteJSON(key, turns); err != nil {
				p.logger.Warn(ctx, "Failed to write chunk %d turns: %v", ch.Index, err)
			}
		}(ch)
	}

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}

	return results, nil
}

// analyzeSegments runs the insight extraction over every segment sequentially
// and aggregates the per-segment results. A failed segment is logged and
// skipped rather than aborting the run.
func (p *implProcessor) analyzeSegments(ctx context.Context, meetingID string, segments []transcript.Segment) *transcript.MeetingAnalysis {
	analysis := &transcript.MeetingAnalysis{
		MeetingID: meetingID,
		Segments:  segments,
	}

	for _, seg := range segments {
		sa, err := p.analyzer.AnalyzeSegment(ctx, seg)
		if err != nil {
			p.logger.Error(ctx, "Segment %d analysis failed: %v", seg.ID, err)
			continue
		}

		analysis.SegmentAnalyses = append(analysis.SegmentAnalyses, *sa)
		analysis.ActionItems = append(analysis.ActionItems, sa.ActionItems...)
		analysis.QAPairs = append(analysis.QAPairs, sa.QAPairs...)
		analysis.CalendarEvents = append(analysis.CalendarEvents, sa.CalendarEvents...)
	}

	return analysis
}

// export writes the human-facing artifacts: transcript docx, minutes docx and
// the calendar file. Export failures degrade to warnings; the JSON artifacts
// already hold everything.
func (p *implProcessor) export(ctx context.Context, manifest *Manifest, meetingID, prefix string, turnsDoc *transcript.TurnsDocument, analysis *transcript.MeetingAnalysis) {
	transcriptPath := p.store.Path(prefix + meetingID + "_transcript.docx")
	if err := exporter.TurnsToDocx(turnsDoc, "Meeting Transcript: "+meetingID, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to export transcript docx: %v", err)
	} else {
		manifest.addArtifact(meetingID+"_transcript.docx", "transcript_docx", len(turnsDoc.Turns))
	}

	minutesPath := p.store.Path(prefix + meetingID + "_minutes.docx")
	if err := exporter.AnalysisToDocx(analysis, "Meeting Minutes: "+meetingID, minutesPath); err != nil {
		p.logger.Warn(ctx, "Failed to export minutes docx: %v", err)
	} else {
		manifest.addArtifact(meetingID+"_minutes.docx", "minutes_docx", len(analysis.SegmentAnalyses))
	}

	if len(analysis.CalendarEvents) > 0 {
		ics := exporter.BuildICS(meetingID, analysis.CalendarEvents)
		if err := p.store.WriteText(prefix+meetingID+".ics", ics); err != nil {
			p.logger.Warn(ctx, "Failed to write calendar file: %v", err)
		} else {
			manifest.addArtifact(meetingID+".ics", "calendar", len(analysis.CalendarEvents))
		}
	}
}

func (p *implProcessor) warnOnInvalid(ctx context.Context, manifest *Manifest, label string, check func() ([]string, error)) {
	problems, err := check()
	if err != nil {
		p.logger.Warn(ctx, "Validation of %s document failed to run: %v", label, err)
		return
	}
	for _, problem := range problems {
		p.logger.Warn(ctx, "Invalid %s document: %s", label, problem)
		manifest.Warnings = append(manifest.Warnings, label+": "+problem)
	}
}

func (p *implProcessor) moveToArchived(transcriptPath string) error {
	if p.cfg.Paths.Archived == "" {
		return nil
	}
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return err
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(transcriptPath))
	return os.Rename(transcriptPath, dest)
}

// meetingIDFrom derives a stable, unique meeting identifier from the
// transcript filename plus a short random suffix.
func meetingIDFrom(transcriptPath string) string {
	base := filepath.Base(transcriptPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	return base + "-" + uuid.NewString()[:8]
}
