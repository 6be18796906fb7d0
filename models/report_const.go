package models

const ReportReasonOther = "Other"

type ReportCategory struct {
	Category string   `json:"category"`
	Reasons  []string `json:"reasons"`
}

// reasons a worker may raise against an owner
var workerReportingOwner = []ReportCategory{
	{
		Category: "Job / Hiring related",
		Reasons: []string{
			"Job details are fake or misleading",
			"Salary offered is not as mentioned",
			"Work conditions are different from description",
			"Asked for advance money / fees",
			"Job location is incorrect or fake",
		},
	},
	{
		Category: "Safety & behavior",
		Reasons: []string{
			"Abusive or threatening behavior",
			"Inappropriate language or conduct",
			"Unsafe working environment",
			"Exploiting workers (long hours, no pay)",
		},
	},
	{
		Category: "Trust & legitimacy",
		Reasons: []string{
			"Company seems fake or unverified",
			"Owner identity looks suspicious",
			"Multiple job posts but no responses",
			"Not responding after accepting application",
		},
	},
	{
		Category: "Platform misuse",
		Reasons: []string{
			"Asking to move conversation outside platform",
			"Sharing false information repeatedly",
		},
	},
}

// reasons an owner may raise against a worker
var ownerReportingWorker = []ReportCategory{
	{
		Category: "Application issues",
		Reasons: []string{
			"Fake profile or incorrect details",
			"Skills mentioned are false",
			"Applied but never responded",
			"Accepted job but didn't join",
		},
	},
	{
		Category: "Behavior & professionalism",
		Reasons: []string{
			"Unprofessional behavior",
			"Abusive language or threats",
			"Misconduct at workplace",
		},
	},
	{
		Category: "Reliability issues",
		Reasons: []string{
			"Frequently applies and withdraws",
			"Does not show up after confirmation",
			"Repeated no-shows",
		},
	},
	{
		Category: "Platform misuse",
		Reasons: []string{
			"Spamming job applications",
			"Creating multiple accounts",
			"Sharing misleading information",
		},
	},
}

// GetReportReasons returns the catalogue used when reporting a user of targetRole.
func GetReportReasons(targetRole UserRole) []ReportCategory {
	if targetRole == UserRoleOwner {
		return workerReportingOwner
	}
	return ownerReportingWorker
}

func IsKnownReportReason(targetRole UserRole, reason string) bool {
	for _, category := range GetReportReasons(targetRole) {
		for _, r := range category.Reasons {
			if r == reason {
				return true
			}
		}
	}
	return false
}
