package dto

// DiagnosticReport is the /test endpoint body. It is always returned with
// HTTP 200; degradation shows up as field values, never as a failed request.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
