package models

import "strings"

// SkillList is the fixed skill dictionary offered to workers and owners.
var SkillList = []string{
	// textile & garment
	"Power Loom Operation",
	"Hand Loom Operation",
	"Textile Machine Operator",
	"Embroidery (Hand)",
	"Embroidery (Machine)",
	"Overlock Machine Operation",
	"Single Needle Machine Operation",
	"Tailoring",
	"Garment Stitching",
	"Cutting & Pattern Making",
	"Fabric Inspection",
	"Ironing / Pressing",
	"Quality Checking (Textiles)",

	// manufacturing
	"Machine Operator",
	"Assembly Line Work",
	"Packaging",
	"Loading & Unloading",
	"Material Handling",
	"Production Helper",
	"Warehouse Assistant",
	"Inventory Management",

	// skilled trades
	"Electrical Maintenance",
	"Mechanical Maintenance",
	"Welding",
	"Fitter",
	"Plumbing",
	"Carpentry",
	"CNC Operator",
	"Lathe Machine Operator",

	// support
	"Forklift Driving",
	"Security Guard",
	"Housekeeping",
	"Cooking / Canteen",
	"Supervisor",
}

// NormalizeSkills trims skills and drops blanks and duplicates, keeping input order.
func NormalizeSkills(list []string) []string {
	result := make([]string, 0, len(list))
	seen := map[string]bool{}
	for _, skill := range list {
		skill = strings.TrimSpace(skill)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		result = append(result, skill)
	}
	return result
}
