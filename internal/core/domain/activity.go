package domain

import "time"

// ActivityEvent is one audit entry describing a state mutation: who acted,
// what operation ran, and which entity it touched. The stream is advisory and
// never gates the mutation itself.
type ActivityEvent struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}
