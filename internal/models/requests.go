package models

// ReviewClaimRequest is the body for approve/reject/flag endpoints.
type ReviewClaimRequest struct {
	OfficerName string `json:"officer_name"`
	Reason      string `json:"reason,omitempty"`
}

// GenerateNDVIRequest configures a test-data regeneration run.
type GenerateNDVIRequest struct {
	Days     int    `json:"days,omitempty"`     // default 60
	Scenario string `json:"scenario,omitempty"` // "healthy" (default) or "flood"
}
