package models

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending:  "Pending",
	ApplicationStatusAccepted: "Accepted",
	ApplicationStatusRejected: "Rejected",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsKnown() bool {
	_, ok := applicationStatusHumanName[s]
	return ok
}

// IsDecision reports whether an owner may move an application into s.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

func (s ApplicationStatus) IsAccepted() bool {
	return s == ApplicationStatusAccepted
}

// CountDelta is the change of the vacancy's remaining headcount (worker_count)
// caused by moving an application from s to next. filled_count moves by the
// opposite amount.
func (s ApplicationStatus) CountDelta(next ApplicationStatus) int {
	if next == ApplicationStatusAccepted && s != ApplicationStatusAccepted {
		return -1
	}
	if s == ApplicationStatusAccepted && next == ApplicationStatusRejected {
		return 1
	}
	return 0
}
