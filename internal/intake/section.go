// Package intake implements the clinical intake wizard core: the ordered
// sections, the field catalog, the step state machine and the flat feature
// record assembled from the collected answers.
//
// The core never renders anything. A presentation layer asks for a
// RenderRequest, draws the controls, decodes what the user entered and hands
// the values back through State.RecordSectionFields.
package intake

// Section is one ordered step of the wizard.
type Section int

const (
	SectionIdentification Section = iota
	SectionDemographics
	SectionLifestyle
	SectionMedicalHistory
	SectionClinical
	SectionCognitive
	SectionSymptoms
)

// TotalSteps is the number of sections in the wizard.
const TotalSteps = 7

// lastSection is the step on which the wizard can be submitted.
const lastSection = SectionSymptoms

// String returns the section title shown to the user.
func (s Section) String() string {
	switch s {
	case SectionIdentification:
		return "Patient Identification"
	case SectionDemographics:
		return "Demographic Details"
	case SectionLifestyle:
		return "Lifestyle Factors"
	case SectionMedicalHistory:
		return "Medical History"
	case SectionClinical:
		return "Clinical Measurements"
	case SectionCognitive:
		return "Cognitive & Functional Assessments"
	case SectionSymptoms:
		return "Symptoms"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is inside [0, TotalSteps).
func (s Section) Valid() bool {
	return s >= SectionIdentification && s <= lastSection
}

// Sections returns every section in wizard order.
func Sections() []Section {
	out := make([]Section, 0, TotalSteps)
	for s := SectionIdentification; s <= lastSection; s++ {
		out = append(out, s)
	}
	return out
}
