package intake

import (
	"errors"
	"testing"
)

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input    string
		expected YesNo
	}{
		{"Yes", Yes},
		{"yes", Yes},
		{" YES ", Yes},
		{"No", No},
		{"no", No},
	}

	for _, tc := range tests {
		result, err := ParseYesNo(tc.input)
		if err != nil {
			t.Errorf("ParseYesNo(%q) returned error: %v", tc.input, err)
		}
		if result != tc.expected {
			t.Errorf("ParseYesNo(%q) = %v, want %v", tc.input, result, tc.expected)
		}
	}

	if _, err := ParseYesNo("maybe"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("ParseYesNo(maybe) = %v, want ErrUnknownLabel", err)
	}
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("Female")
	if err != nil || g.Code() != 1 {
		t.Errorf("ParseGender(Female) = %v, %v; want code 1", g, err)
	}
	g, err = ParseGender("male")
	if err != nil || g.Code() != 0 {
		t.Errorf("ParseGender(male) = %v, %v; want code 0", g, err)
	}
	if _, err := ParseGender("M"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("ParseGender(M) = %v, want ErrUnknownLabel", err)
	}
}

func TestParseEthnicity(t *testing.T) {
	tests := map[string]float64{
		"Caucasian":        0,
		"African American": 1,
		"asian":            2,
		"Other":            3,
	}
	for label, code := range tests {
		e, err := ParseEthnicity(label)
		if err != nil {
			t.Errorf("ParseEthnicity(%q) returned error: %v", label, err)
			continue
		}
		if e.Code() != code {
			t.Errorf("ParseEthnicity(%q) code = %v, want %v", label, e.Code(), code)
		}
	}
	if _, err := ParseEthnicity("Martian"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Expected ErrUnknownLabel, got %v", err)
	}
}

func TestParseEducation_UnlabeledOptionIsZero(t *testing.T) {
	e, err := ParseEducation("")
	if err != nil {
		t.Fatalf("ParseEducation(\"\") returned error: %v", err)
	}
	if e != EducationNone || e.Code() != 0 {
		t.Errorf("Empty education label should map to 0, got %v", e.Code())
	}
	if e.String() != "" {
		t.Errorf("EducationNone label = %q, want empty", e.String())
	}

	e, _ = ParseEducation("Bachelor's")
	if e.Code() != 2 {
		t.Errorf("Bachelor's code = %v, want 2", e.Code())
	}
	e, _ = ParseEducation("Higher Education")
	if e.Code() != 3 {
		t.Errorf("Higher Education code = %v, want 3", e.Code())
	}
}

func TestEnumStringRoundTrip(t *testing.T) {
	for _, y := range []YesNo{No, Yes} {
		if got, _ := ParseYesNo(y.String()); got != y {
			t.Errorf("YesNo %v did not round trip", y)
		}
	}
	for g := Male; g <= Female; g++ {
		if got, _ := ParseGender(g.String()); got != g {
			t.Errorf("Gender %v did not round trip", g)
		}
	}
	for e := Caucasian; e <= OtherEthnicity; e++ {
		if got, _ := ParseEthnicity(e.String()); got != e {
			t.Errorf("Ethnicity %v did not round trip", e)
		}
	}
	for e := EducationNone; e <= HigherEducation; e++ {
		if got, _ := ParseEducation(e.String()); got != e {
			t.Errorf("Education %v did not round trip", e)
		}
	}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		field string
		label string
		want  float64
	}{
		{FieldConfusion, "yes", 1},
		{FieldSmokingHabit, "No", 0},
		{FieldGender, "FEMALE", 1},
		{FieldEthnicity, "Asian", 2},
		{FieldEducation, "", 0},
		{FieldEducation, "Higher Education", 3},
	}

	for _, tc := range tests {
		spec, err := LookupField(tc.field)
		if err != nil {
			t.Fatalf("LookupField(%s) failed: %v", tc.field, err)
		}
		got, err := ParseOption(spec, tc.label)
		if err != nil {
			t.Errorf("ParseOption(%s, %q) returned error: %v", tc.field, tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseOption(%s, %q) = %v, want %v", tc.field, tc.label, got, tc.want)
		}
	}

	gender, _ := LookupField(FieldGender)
	if _, err := ParseOption(gender, "Yes"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("ParseOption(Gender, Yes) = %v, want ErrUnknownLabel", err)
	}
	age, _ := LookupField(FieldAge)
	if _, err := ParseOption(age, "1"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("ParseOption(Age, 1) = %v, want ErrUnknownLabel", err)
	}
}
