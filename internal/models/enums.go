package models

type DisasterType string

const (
	DisasterNone    DisasterType = "none"
	DisasterFlood   DisasterType = "flood"
	DisasterDrought DisasterType = "drought"
	DisasterPest    DisasterType = "pest"
	DisasterUnknown DisasterType = "unknown"
)

type AlertSeverity string

const (
	SeverityModerate AlertSeverity = "moderate"
	SeverityCritical AlertSeverity = "critical"
	SeveritySevere   AlertSeverity = "severe"
)

type AlertStatus string

const (
	AlertActive   AlertStatus = "active"
	AlertResolved AlertStatus = "resolved"
)

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
	ClaimFlagged  ClaimStatus = "flagged"
)

type CropHealthStatus string

const (
	HealthUnaffected CropHealthStatus = "Unaffected"
	HealthAffected   CropHealthStatus = "Affected"
	HealthCritical   CropHealthStatus = "Critical"
	HealthSevere     CropHealthStatus = "Severe"
)
