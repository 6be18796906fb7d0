package models

import "time"

// VacancyLifetime is the age after which a posting is treated as expired until renewed.
const VacancyLifetime = 30 * 24 * time.Hour

type VacancyStatus string

const (
	VacancyStatusActive   VacancyStatus = "active"
	VacancyStatusInactive VacancyStatus = "inactive"
)

func (s VacancyStatus) IsValid() bool {
	return s == VacancyStatusActive || s == VacancyStatusInactive
}

type Facility string

const (
	FacilityNone Facility = "None"
	FacilityFree Facility = "Free"
	FacilityPaid Facility = "Paid"
)

func (f Facility) IsValid() bool {
	switch f {
	case FacilityNone, FacilityFree, FacilityPaid:
		return true
	}
	return false
}
