package validate

const turnsDocumentSchema = `{
  "type": "object",
  "required": ["meeting_id", "time_zone", "turns"],
  "properties": {
    "meeting_id": {"type": "string", "minLength": 1},
    "time_zone": {"type": "string"},
    "turns": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["idx", "start_ts", "end_ts", "speaker", "type", "question_likelihood", "text"],
        "properties": {
          "idx": {"type": "integer", "minimum": 0},
          "start_ts": {"type": "string"},
          "end_ts": {"type": "string"},
          "speaker": {"type": "string"},
          "type": {
            "type": "string",
            "enum": ["question", "answer", "followup", "monologue", "housekeeping"]
          },
          "question_likelihood": {"type": "number", "minimum": 0, "maximum": 1},
          "text": {"type": "string"}
        }
      }
    }
  }
}`

const segmentsDocumentSchema = `{
  "type": "object",
  "required": ["meeting_id", "segments"],
  "properties": {
    "meeting_id": {"type": "string", "minLength": 1},
    "segments": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "topic", "speakers", "text"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "start_time": {"type": ["number", "null"]},
          "end_time": {"type": ["number", "null"]},
          "topic": {"type": "string"},
          "speakers": {"type": "array", "items": {"type": "string"}},
          "text": {"type": "string"}
        }
      }
    }
  }
}`
