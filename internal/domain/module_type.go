package domain

// ModuleType identifies one of the content verticals that share the
// universal module schema. The set is closed: adding a vertical means
// adding a constant here and redeploying every component that
// validates it.
type ModuleType string

const (
	ModuleStudyIndia      ModuleType = "study-india"
	ModuleStudyAbroad     ModuleType = "study-abroad"
	ModulePlacementIndia  ModuleType = "placement-india"
	ModulePlacementAbroad ModuleType = "placement-abroad"
	ModuleMBBSIndia       ModuleType = "mbbs-india"
	ModuleMBBSAbroad      ModuleType = "mbbs-abroad"
	ModuleLoans           ModuleType = "loans"
	ModuleScholarships    ModuleType = "scholarships"
	ModuleCourses         ModuleType = "courses"
	ModuleTestPrep        ModuleType = "test-prep"
	ModuleInternships     ModuleType = "internships"
	ModuleImmigration     ModuleType = "immigration"
)

var moduleTypes = []ModuleType{
	ModuleStudyIndia,
	ModuleStudyAbroad,
	ModulePlacementIndia,
	ModulePlacementAbroad,
	ModuleMBBSIndia,
	ModuleMBBSAbroad,
	ModuleLoans,
	ModuleScholarships,
	ModuleCourses,
	ModuleTestPrep,
	ModuleInternships,
	ModuleImmigration,
}

func (m ModuleType) Valid() bool {
	for _, t := range moduleTypes {
		if m == t {
			return true
		}
	}
	return false
}

// ModuleTypes returns the closed set of verticals, mainly for error
// messages and the admin UI dropdown.
func ModuleTypes() []ModuleType {
	out := make([]ModuleType, len(moduleTypes))
	copy(out, moduleTypes)
	return out
}
