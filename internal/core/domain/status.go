package domain

import "time"

// StatusCheck is a client-reported heartbeat record, the one persisted
// resource of the support tooling.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
