package domain

import "time"

// BuildRecord is one entry of the build history.
type BuildRecord struct {
	RunID        string    `json:"run_id,omitzero"`
	Script       string    `json:"script,omitzero"`
	Artifact     string    `json:"artifact,omitzero"`
	ArtifactHash string    `json:"artifact_hash,omitzero"`
	Outcome      string    `json:"outcome,omitzero"`
	Stale        bool      `json:"stale,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
