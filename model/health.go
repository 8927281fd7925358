package model

import "time"

// HealthStatus is the payload returned by the public ping endpoints.
type HealthStatus struct {
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
