package domain

import "time"

// OutputInfo describes a persisted block output.
type OutputInfo struct {
	Namespace   string    `json:"namespace,omitzero"`
	StorageKey  string    `json:"storage_key,omitzero"`
	Rows        int       `json:"rows,omitzero"`
	Columns     []string  `json:"columns,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
