package transcript

// TurnType classifies a single utterance in the meeting.
type TurnType string

const (
	TurnQuestion     TurnType = "question"
	TurnAnswer       TurnType = "answer"
	TurnFollowup     TurnType = "followup"
	TurnMonologue    TurnType = "monologue"
	TurnHousekeeping TurnType = "housekeeping"
)

// Turn is one attributed utterance extracted from the transcript.
// Indices are local to the chunk that produced the turn until the merge
// pass re-sequences them.
type Turn struct {
	Idx                int      `json:"idx"`
	StartTS            string   `json:"start_ts"`
	EndTS              string   `json:"end_ts"`
	Speaker            string   `json:"speaker"`
	Type               TurnType `json:"type"`
	QuestionLikelihood float64  `json:"question_likelihood"`
	Text               string   `json:"text"`
}

// TurnsDocument is the turns artifact written after merging.
type TurnsDocument struct {
	MeetingID string `json:"meeting_id"`
	TimeZone  string `json:"time_zone"`
	Turns     []Turn `json:"turns"`
}

// Segment is a token-budget-bounded grouping of consecutive turns.
// Start and end times are in seconds from the start of the recording;
// nil when the source timestamps could not be parsed.
type Segment struct {
	ID        int      `json:"id"`
	StartTime *float64 `json:"start_time"`
	EndTime   *float64 `json:"end_time"`
	Topic     string   `json:"topic"`
	Speakers  []string `json:"speakers"`
	Text      string   `json:"text"`
}

// ActionItem tracks a follow-up action derived from the discussion.
type ActionItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// QAPair captures a question-and-answer exchange within a segment.
type QAPair struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AskedBy    string `json:"asked_by,omitempty"`
	AnsweredBy string `json:"answered_by,omitempty"`
}

// CalendarEvent is a proposed calendar entry inferred from the meeting.
type CalendarEvent struct {
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// SegmentAnalysis holds structured insights extracted from one segment.
type SegmentAnalysis struct {
	SegmentID      int             `json:"segment_id"`
	KeyPoints      []string        `json:"key_points"`
	Decisions      []string        `json:"decisions"`
	ActionItems    []ActionItem    `json:"action_items"`
	QAPairs        []QAPair        `json:"qa_pairs"`
	CalendarEvents []CalendarEvent `json:"calendar_events"`
}

// MeetingAnalysis aggregates per-segment analyses into meeting-wide artifacts.
type MeetingAnalysis struct {
	MeetingID       string            `json:"meeting_id"`
	Segments        []Segment         `json:"segments"`
	SegmentAnalyses []SegmentAnalysis `json:"segment_analyses"`
	ActionItems     []ActionItem      `json:"all_action_items"`
	QAPairs         []QAPair          `json:"all_qa_pairs"`
	CalendarEvents  []CalendarEvent   `json:"all_calendar_events"`
}
