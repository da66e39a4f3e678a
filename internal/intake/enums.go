package intake

import (
	"fmt"
	"strings"
)

// YesNo is the fixed encoding of every binary field.
type YesNo int

const (
	No YesNo = iota
	Yes
)

// Code returns the stored value.
func (y YesNo) Code() float64 { return float64(y) }

// String returns the option label.
func (y YesNo) String() string {
	if y == Yes {
		return "Yes"
	}
	return "No"
}

// ParseYesNo decodes a Yes/No label.
func ParseYesNo(label string) (YesNo, error) {
	switch normalizeLabel(label) {
	case "no":
		return No, nil
	case "yes":
		return Yes, nil
	default:
		return No, fmt.Errorf("%w: %q (valid: No, Yes)", ErrUnknownLabel, label)
	}
}

// Gender is the demographic gender category.
type Gender int

const (
	Male Gender = iota
	Female
)

// Code returns the stored value.
func (g Gender) Code() float64 { return float64(g) }

// String returns the option label.
func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// ParseGender decodes a gender label.
func ParseGender(label string) (Gender, error) {
	switch normalizeLabel(label) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return Male, fmt.Errorf("%w: %q (valid: Male, Female)", ErrUnknownLabel, label)
	}
}

// Ethnicity is the demographic ethnicity category.
type Ethnicity int

const (
	Caucasian Ethnicity = iota
	AfricanAmerican
	Asian
	OtherEthnicity
)

// Code returns the stored value.
func (e Ethnicity) Code() float64 { return float64(e) }

// String returns the option label.
func (e Ethnicity) String() string {
	switch e {
	case AfricanAmerican:
		return "African American"
	case Asian:
		return "Asian"
	case OtherEthnicity:
		return "Other"
	default:
		return "Caucasian"
	}
}

// ParseEthnicity decodes an ethnicity label.
func ParseEthnicity(label string) (Ethnicity, error) {
	switch normalizeLabel(label) {
	case "caucasian":
		return Caucasian, nil
	case "african american":
		return AfricanAmerican, nil
	case "asian":
		return Asian, nil
	case "other":
		return OtherEthnicity, nil
	default:
		return Caucasian, fmt.Errorf("%w: %q (valid: Caucasian, African American, Asian, Other)", ErrUnknownLabel, label)
	}
}

// Education is the highest education level. The first option carries no
// label and shares code 0 with "missing".
type Education int

const (
	EducationNone Education = iota
	HighSchool
	Bachelors
	HigherEducation
)

// Code returns the stored value.
func (e Education) Code() float64 { return float64(e) }

// String returns the option label. EducationNone has the empty label.
func (e Education) String() string {
	switch e {
	case HighSchool:
		return "High School"
	case Bachelors:
		return "Bachelor's"
	case HigherEducation:
		return "Higher Education"
	default:
		return ""
	}
}

// ParseEducation decodes an education label. The empty label maps to
// EducationNone.
func ParseEducation(label string) (Education, error) {
	switch normalizeLabel(label) {
	case "":
		return EducationNone, nil
	case "high school":
		return HighSchool, nil
	case "bachelor's":
		return Bachelors, nil
	case "higher education":
		return HigherEducation, nil
	default:
		return EducationNone, fmt.Errorf("%w: %q (valid: \"\", High School, Bachelor's, Higher Education)", ErrUnknownLabel, label)
	}
}

// ParseOption decodes a label of a categorical field through the field's
// typed enumeration and returns its stored code.
func ParseOption(spec FieldSpec, label string) (float64, error) {
	switch {
	case spec.IsBinary():
		v, err := ParseYesNo(label)
		return v.Code(), err
	case spec.Name == FieldGender:
		v, err := ParseGender(label)
		return v.Code(), err
	case spec.Name == FieldEthnicity:
		v, err := ParseEthnicity(label)
		return v.Code(), err
	case spec.Name == FieldEducation:
		v, err := ParseEducation(label)
		return v.Code(), err
	}
	return 0, fmt.Errorf("%w: %q (%s has no options)", ErrUnknownLabel, label, spec.Name)
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func yesNoOptions() []Option {
	return []Option{
		{Label: No.String(), Code: int(No)},
		{Label: Yes.String(), Code: int(Yes)},
	}
}

func genderOptions() []Option {
	return []Option{
		{Label: Male.String(), Code: int(Male)},
		{Label: Female.String(), Code: int(Female)},
	}
}

func ethnicityOptions() []Option {
	opts := make([]Option, 0, 4)
	for e := Caucasian; e <= OtherEthnicity; e++ {
		opts = append(opts, Option{Label: e.String(), Code: int(e)})
	}
	return opts
}

func educationOptions() []Option {
	opts := make([]Option, 0, 4)
	for e := EducationNone; e <= HigherEducation; e++ {
		opts = append(opts, Option{Label: e.String(), Code: int(e)})
	}
	return opts
}
