package models

// Fixed diagnostic values
const (
	BackendRunning        = "Running"
	DatabaseConnected     = "Connected"
	DatabaseNotConfigured = "Not Configured"
	RootMessage           = "Nocode Saarthi Backend Running"
)

// ProbeResult is the outcome of a persistence probe.
// Collections is nil unless the store answered; an empty store gives an empty slice.
type ProbeResult struct {
	Backend     string
	Database    string
	Collections []string
}
