package intake

import (
	"fmt"
	"strings"
)

// FieldKind describes how a field is entered and stored.
type FieldKind int

const (
	// KindInteger is a whole-number input.
	KindInteger FieldKind = iota
	// KindDecimal is a fractional input.
	KindDecimal
	// KindCategory is a select whose label is decoded to an integer code.
	KindCategory
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Option is one label/code pair of a categorical field.
type Option struct {
	Label string
	Code  int
}

// FieldSpec declares a single collected field.
type FieldSpec struct {
	Name    string
	Label   string
	Section Section
	Kind    FieldKind
	Min     float64
	Max     float64
	Default float64
	// Precision is the number of decimals shown for KindDecimal.
	Precision int
	Options   []Option
}

// IsBinary reports whether the field uses the Yes/No encoding.
func (f FieldSpec) IsBinary() bool {
	return f.Kind == KindCategory && len(f.Options) == 2 && f.Options[1].Label == Yes.String()
}

// OptionLabel returns the label for code, or false if the field has no such option.
func (f FieldSpec) OptionLabel(code int) (string, bool) {
	for _, o := range f.Options {
		if o.Code == code {
			return o.Label, true
		}
	}
	return "", false
}

// Field names. These are the keys of State.Inputs and the record columns.
const (
	FieldPatientName = "PatientName"
	FieldPatientID   = "PatientID"

	FieldAge       = "Age"
	FieldGender    = "Gender"
	FieldEthnicity = "Ethnicity"
	FieldEducation = "Education"

	FieldBMI                = "BMI"
	FieldSmokingHabit       = "SmokingHabit"
	FieldAlcoholConsumption = "AlcoholConsumption"
	FieldPhysicalActivity   = "PhysicalActivity"
	FieldDietScore          = "DietScore"
	FieldSleepDuration      = "SleepDuration"

	FieldFamilyHistoryAlzheimers = "FamilyHistoryAlzheimers"
	FieldCardiovascularDisease   = "CardiovascularDisease"
	FieldDiabetes                = "Diabetes"
	FieldDepression              = "Depression"
	FieldHeadInjury              = "HeadInjury"
	FieldHypertension            = "Hypertension"

	FieldSystolicBP               = "SystolicBP"
	FieldDiastolicBP              = "DiastolicBP"
	FieldCholesterolTotal         = "CholesterolTotal"
	FieldCholesterolLDL           = "CholesterolLDL"
	FieldCholesterolHDL           = "CholesterolHDL"
	FieldCholesterolTriglycerides = "CholesterolTriglycerides"

	FieldMMSE                 = "MMSE"
	FieldFunctionalAssessment = "FunctionalAssessment"
	FieldMemoryComplaints     = "MemoryComplaints"
	FieldBehavioralProblems   = "BehavioralProblems"
	FieldADL                  = "ADL"

	FieldConfusion                 = "Confusion"
	FieldDisorientation            = "Disorientation"
	FieldPersonalityChanges        = "PersonalityChanges"
	FieldDifficultyCompletingTasks = "DifficultyCompletingTasks"
	FieldForgetfulness             = "Forgetfulness"
)

// identificationFields never reach State.Inputs.
var identificationFields = map[string]bool{
	FieldPatientName: true,
	FieldPatientID:   true,
}

// IsIdentificationField reports whether name belongs to Patient Identification.
func IsIdentificationField(name string) bool {
	return identificationFields[name]
}

func integer(section Section, name, label string, lo, hi, def float64) FieldSpec {
	return FieldSpec{Name: name, Label: label, Section: section, Kind: KindInteger, Min: lo, Max: hi, Default: def}
}

func binary(section Section, name, label string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Section: section, Kind: KindCategory, Min: 0, Max: 1, Options: yesNoOptions()}
}

func category(section Section, name, label string, opts []Option) FieldSpec {
	return FieldSpec{Name: name, Label: label, Section: section, Kind: KindCategory, Min: 0, Max: float64(len(opts) - 1), Options: opts}
}

// catalog lists the collected fields of each section in display order.
// Section 0 contributes no model-facing fields.
var catalog = [TotalSteps][]FieldSpec{
	SectionIdentification: nil,
	SectionDemographics: {
		integer(SectionDemographics, FieldAge, "Enter Age", 1, 120, 1),
		category(SectionDemographics, FieldGender, "Select Gender", genderOptions()),
		category(SectionDemographics, FieldEthnicity, "Select Ethnicity", ethnicityOptions()),
		category(SectionDemographics, FieldEducation, "Select Education Level", educationOptions()),
	},
	SectionLifestyle: {
		{Name: FieldBMI, Label: "Enter BMI", Section: SectionLifestyle, Kind: KindDecimal, Min: 10, Max: 50, Default: 10, Precision: 2},
		binary(SectionLifestyle, FieldSmokingHabit, "Smoking Habit"),
		integer(SectionLifestyle, FieldAlcoholConsumption, "Alcohol Consumption (units per week)", 0, 20, 0),
		integer(SectionLifestyle, FieldPhysicalActivity, "Physical Activity (hours per week)", 0, 10, 0),
		integer(SectionLifestyle, FieldDietScore, "Diet Quality Score (1-10)", 1, 10, 1),
		integer(SectionLifestyle, FieldSleepDuration, "Average Sleep Duration (hours)", 4, 10, 4),
	},
	SectionMedicalHistory: {
		binary(SectionMedicalHistory, FieldFamilyHistoryAlzheimers, "Family history of Alzheimer's"),
		binary(SectionMedicalHistory, FieldCardiovascularDisease, "Cardiovascular disease"),
		binary(SectionMedicalHistory, FieldDiabetes, "Diabetes"),
		binary(SectionMedicalHistory, FieldDepression, "Depression"),
		binary(SectionMedicalHistory, FieldHeadInjury, "History of head injury"),
		binary(SectionMedicalHistory, FieldHypertension, "Hypertension"),
	},
	SectionClinical: {
		integer(SectionClinical, FieldSystolicBP, "Systolic Blood Pressure (mmHg)", 90, 180, 120),
		integer(SectionClinical, FieldDiastolicBP, "Diastolic Blood Pressure (mmHg)", 60, 120, 80),
		integer(SectionClinical, FieldCholesterolTotal, "Total Cholesterol (mg/dL)", 150, 300, 200),
		integer(SectionClinical, FieldCholesterolLDL, "LDL Cholesterol (mg/dL)", 50, 200, 100),
		integer(SectionClinical, FieldCholesterolHDL, "HDL Cholesterol (mg/dL)", 20, 100, 50),
		integer(SectionClinical, FieldCholesterolTriglycerides, "Triglycerides (mg/dL)", 50, 400, 150),
	},
	SectionCognitive: {
		integer(SectionCognitive, FieldMMSE, "MMSE (Mini-Mental State Examination) Score (0–30)", 0, 30, 24),
		integer(SectionCognitive, FieldFunctionalAssessment, "Functional Ability Score (0–10)", 0, 10, 7),
		binary(SectionCognitive, FieldMemoryComplaints, "Memory complaints"),
		binary(SectionCognitive, FieldBehavioralProblems, "Behavioral problems"),
		integer(SectionCognitive, FieldADL, "ADL (Activities of Daily Living) Score (0–10)", 0, 10, 8),
	},
	SectionSymptoms: {
		binary(SectionSymptoms, FieldConfusion, "Confusion"),
		binary(SectionSymptoms, FieldDisorientation, "Disorientation"),
		binary(SectionSymptoms, FieldPersonalityChanges, "Personality changes"),
		binary(SectionSymptoms, FieldDifficultyCompletingTasks, "Difficulty completing daily tasks"),
		binary(SectionSymptoms, FieldForgetfulness, "Forgetfulness"),
	},
}

// fieldIndex maps lowercase field names to their spec and catalog position.
var fieldIndex = buildFieldIndex()

type indexedField struct {
	spec     FieldSpec
	position int
}

func buildFieldIndex() map[string]indexedField {
	idx := make(map[string]indexedField)
	pos := 0
	for _, specs := range catalog {
		for _, spec := range specs {
			idx[strings.ToLower(spec.Name)] = indexedField{spec: spec, position: pos}
			pos++
		}
	}
	return idx
}

// SectionFields returns a copy of the field specs collected by s.
// It returns nil for Patient Identification and for invalid sections.
func SectionFields(s Section) []FieldSpec {
	if !s.Valid() || len(catalog[s]) == 0 {
		return nil
	}
	out := make([]FieldSpec, len(catalog[s]))
	for i, spec := range catalog[s] {
		spec.Options = append([]Option(nil), spec.Options...)
		out[i] = spec
	}
	return out
}

// AllFields returns every model-facing field in catalog order.
func AllFields() []FieldSpec {
	var out []FieldSpec
	for _, s := range Sections() {
		out = append(out, SectionFields(s)...)
	}
	return out
}

// DefaultFields returns the values a section's controls show before any edit.
func DefaultFields(s Section) Fields {
	specs := SectionFields(s)
	if specs == nil {
		return nil
	}
	out := make(Fields, len(specs))
	for _, spec := range specs {
		out[spec.Name] = spec.Default
	}
	return out
}

// LookupField returns the spec for a field name. The lookup is
// case-insensitive. Unknown names get a closest-match suggestion when one is
// near enough.
func LookupField(name string) (FieldSpec, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if f, ok := fieldIndex[normalized]; ok {
		return f.spec, nil
	}

	if suggestion := closestFieldName(normalized); suggestion != "" {
		return FieldSpec{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownField, name, suggestion)
	}
	return FieldSpec{}, fmt.Errorf("%w %q", ErrUnknownField, name)
}

// catalogPosition returns the display position of a field, or -1.
func catalogPosition(name string) int {
	if f, ok := fieldIndex[strings.ToLower(name)]; ok && f.spec.Name == name {
		return f.position
	}
	return -1
}

// closestFieldName finds the nearest field name by Levenshtein distance.
// Returns empty string if nothing is within distance 5.
func closestFieldName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	bestPosition := -1
	var bestMatch string

	for key, f := range fieldIndex {
		distance := levenshteinDistance(input, key)
		// ties resolve to catalog order so suggestions are stable
		if distance < bestDistance || (distance == bestDistance && f.position < bestPosition) {
			bestDistance = distance
			bestPosition = f.position
			bestMatch = f.spec.Name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
