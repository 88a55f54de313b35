package history

import "time"

// Session groups the confirmations of one picker run.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source"`
}

// Confirmation is a value emitted by the picker.
type Confirmation struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Value       string    `json:"value"`
	Display     string    `json:"display"`
	Timezone    string    `json:"timezone"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
