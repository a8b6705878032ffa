package domain

import "encoding/json"

// Challenge is the single active time-boxed program. Day records are opaque
// and stored exactly as the admin sent them.
type Challenge struct {
	ID          Text              `json:"id"`
	Title       Text              `json:"title"`
	Description Text              `json:"description"`
	Duration    json.RawMessage   `json:"duration,omitempty"`
	Days        []json.RawMessage `json:"days"`
}

// ChallengeDocument holds at most one challenge. A nil Challenge is
// serialised as {"challenge":null}.
type ChallengeDocument struct {
	Challenge *Challenge `json:"challenge"`
}

type ChallengeInput struct {
	ID          Text              `json:"id"`
	Title       Text              `json:"title"`
	Description Text              `json:"description"`
	Duration    json.RawMessage   `json:"duration"`
	Days        []json.RawMessage `json:"days"`
}
