package models

import (
	"time"

	"cropwatch/internal/geo"
)

// ============================================================================
// FARM ROSTER
// ============================================================================

type Farm struct {
	ID                  int                `json:"id"`
	FarmerName          string             `json:"farmer_name"`
	Crop                string             `json:"crop"`
	CropVariety         string             `json:"crop_variety"`
	Location            string             `json:"location"`
	Plot                []geo.Point        `json:"plot"`
	AreaHectares        float64            `json:"area_hectares"`
	SowingDate          time.Time          `json:"sowing_date"`
	ExpectedHarvestDate time.Time          `json:"expected_harvest_date"`
	BaselineNDVI        float64            `json:"baseline_ndvi"`
	InsuranceValue      float64            `json:"insurance_value"`
	ContactInfo         ContactInfo        `json:"contact_info"`
	AdministrativeData  AdministrativeData `json:"administrative_data"`
}

type ContactInfo struct {
	Phone  string `json:"phone"`
	Aadhar string `json:"aadhar"`
}

type AdministrativeData struct {
	State    string `json:"state"`
	District string `json:"district"`
	Tehsil   string `json:"tehsil"`
	Village  string `json:"village"`
	Pincode  string `json:"pincode"`
}
