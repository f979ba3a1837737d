package exporter

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
	titleSz  = 16
	headSz   = 14
)

// TurnsToDocx writes the merged turn sequence as a readable transcript
// document: one paragraph per turn, speaker and time range in bold.
func TurnsToDocx(doc *transcript.TurnsDocument, title, outputPath string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(d.AddParagraph(""), title, true, titleSz)
	d.AddParagraph("")

	for _, turn := range doc.Turns {
		p := d.AddParagraph("")
		label := turn.Speaker
		if label == "" {
			label = "Unknown"
		}
		if turn.StartTS != "" {
			label = fmt.Sprintf("[%s] %s", turn.StartTS, label)
		}
		addStyledRun(p, label+": ", true, fontSize)
		addStyledRun(p, turn.Text, false, fontSize)
	}

	if err := d.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// AnalysisToDocx writes the aggregated meeting analysis as minutes-style
// notes: one section per segment with key points, decisions and action items.
func AnalysisToDocx(analysis *transcript.MeetingAnalysis, title, outputPath string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(d.AddParagraph(""), title, true, titleSz)
	d.AddParagraph("")

	segmentByID := make(map[int]transcript.Segment, len(analysis.Segments))
	for _, seg := range analysis.Segments {
		segmentByID[seg.ID] = seg
	}

	for _, sa := range analysis.SegmentAnalyses {
		heading := fmt.Sprintf("Segment %d", sa.SegmentID)
		if seg, ok := segmentByID[sa.SegmentID]; ok && seg.Topic != "" {
			heading = seg.Topic
		}
		addStyledRun(d.AddParagraph(""), heading, true, headSz)

		addBullets(d, "Key points", sa.KeyPoints)
		addBullets(d, "Decisions", sa.Decisions)

		if len(sa.ActionItems) > 0 {
			addStyledRun(d.AddParagraph(""), "Action items", true, fontSize)
			for _, item := range sa.ActionItems {
				line := item.Description
				if item.Owner != "" {
					line += " (" + item.Owner
					if item.DueDate != "" {
						line += ", due " + item.DueDate
					}
					line += ")"
				} else if item.DueDate != "" {
					line += " (due " + item.DueDate + ")"
				}
				addStyledRun(d.AddParagraph(""), "• "+line, false, fontSize)
			}
		}

		d.AddParagraph("")
	}

	if err := d.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addBullets(d *docx.RootDoc, label string, items []string) {
	if len(items) == 0 {
		return
	}
	addStyledRun(d.AddParagraph(""), label, true, fontSize)
	for _, item := range items {
		addStyledRun(d.AddParagraph(""), "• "+item, false, fontSize)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
