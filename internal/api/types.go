package api

// Meeting status values reported by the service.
const (
	StatusNoMeeting  = "no_meeting"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Thought is one textual note recorded for a board member.
type Thought struct {
	Content string `json:"content"`
}

// MemberStats holds the per-member telemetry included in a status snapshot.
type MemberStats struct {
	Health        float64   `json:"health"`
	Contributions int       `json:"contributions"`
	Thoughts      []Thought `json:"thoughts"`
	TokenUsage    float64   `json:"token_usage"`
	MaxTokens     float64   `json:"max_tokens"`
}

// MeetingStatus is one poll response describing the current backend state.
// CurrentSpeaker is nil when nobody holds the floor; MeetingStats keys are
// stable member identities.
type MeetingStatus struct {
	Status         string                 `json:"status"`
	MeetingStage   string                 `json:"meeting_stage"`
	CurrentSpeaker *string                `json:"current_speaker"`
	MeetingStats   map[string]MemberStats `json:"meeting_stats"`
	Error          string                 `json:"error"`
}

// Terminal reports whether the status means the meeting is over and
// polling should stop.
func (s *MeetingStatus) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusError
}

// StartResponse is the acknowledgment returned by the start-meeting endpoint.
type StartResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Started reports whether the service acknowledged the start request.
func (r *StartResponse) Started() bool {
	return r.Status == "success"
}
