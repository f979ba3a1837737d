package processor

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactInfo describes one generated artifact for the audit trail.
type ArtifactInfo struct {
	Filename    string `json:"filename"`
	Type        string `json:"type"`
	RecordCount int    `json:"record_count"`
}

// Manifest is the per-run processing record written as the last artifact.
type Manifest struct {
	RunID           string         `json:"run_id"`
	MeetingID       string         `json:"meeting_id"`
	SourceFile      string         `json:"source_file"`
	SourceBytes     int            `json:"source_bytes"`
	Chunked         bool           `json:"chunked"`
	ChunkCount      int            `json:"chunk_count"`
	StartedAt       string         `json:"started_at"`
	FinishedAt      string         `json:"finished_at"`
	DurationSeconds float64        `json:"duration_seconds"`
	Status          string         `json:"status"`
	Artifacts       []ArtifactInfo `json:"artifacts"`
	Warnings        []string       `json:"warnings"`
}

func newManifest(meetingID, sourceFile string, sourceBytes int) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		MeetingID:   meetingID,
		SourceFile:  sourceFile,
		SourceBytes: sourceBytes,
		StartedAt:   time.Now().UTC().Format(time.RFC3339),
		Status:      "running",
	}
}

func (m *Manifest) addArtifact(filename, artifactType string, recordCount int) {
	m.Artifacts = append(m.Artifacts, ArtifactInfo{
		Filename:    filename,
		Type:        artifactType,
		RecordCount: recordCount,
	})
}

func (m *Manifest) finish(elapsed time.Duration) {
	m.FinishedAt = time.Now().UTC().Format(time.RFC3339)
	m.DurationSeconds = elapsed.Seconds()
	m.Status = "completed"
}
