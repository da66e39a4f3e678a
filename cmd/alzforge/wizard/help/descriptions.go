package help

import (
	"strings"

	"github.com/mrsinham/alzforge/internal/intake"
)

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Keys for help entries that are not catalog fields.
const (
	KeyPatientName   = "patient_name"
	KeyPatientID     = "patient_id"
	KeyNavigation    = "nav"
	KeySummaryAction = "summary_action"
)

const yesNoDetails = "No = 0, Yes = 1"

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	KeyPatientName: {
		Title:       "PATIENT NAME",
		Description: "Name of the patient being assessed.",
		Details:     "Shown for reference only. It is never stored in the feature record.",
	},
	KeyPatientID: {
		Title:       "PATIENT ID",
		Description: "Display identifier drawn when this section is shown.",
		Details:     "A new number between 4715 and 6899 is drawn every time. It is not stored.",
	},
	KeyNavigation: {
		Title:       "NAVIGATION",
		Description: "Choose where to go once this section is filled in.",
		Details:     "The answers on this screen are saved whatever you choose. Submit is offered on the last section only.",
	},
	KeySummaryAction: {
		Title:       "SUMMARY",
		Description: "Review the collected record.",
		Details:     "Back to edit reopens the Symptoms section. Finish prints the record and exits.",
	},

	intake.FieldAge: {
		Title:       "AGE",
		Description: "Patient age in years.",
		Details:     "Whole number between 1 and 120.",
	},
	intake.FieldGender: {
		Title:       "GENDER",
		Description: "Patient gender.",
		Details:     "Male = 0, Female = 1",
	},
	intake.FieldEthnicity: {
		Title:       "ETHNICITY",
		Description: "Patient ethnicity.",
		Details:     "Caucasian = 0, African American = 1, Asian = 2, Other = 3",
	},
	intake.FieldEducation: {
		Title:       "EDUCATION LEVEL",
		Description: "Highest completed education.",
		Details:     "None = 0, High School = 1, Bachelor's = 2, Higher Education = 3",
	},

	intake.FieldBMI: {
		Title:       "BODY MASS INDEX",
		Description: "Weight in kilograms divided by the square of height in metres.",
		Details:     "Between 10.00 and 50.00, two decimals.",
	},
	intake.FieldSmokingHabit: {
		Title:       "SMOKING HABIT",
		Description: "Does the patient currently smoke?",
		Details:     yesNoDetails,
	},
	intake.FieldAlcoholConsumption: {
		Title:       "ALCOHOL CONSUMPTION",
		Description: "Units of alcohol per week.",
		Details:     "Whole number between 0 and 20.",
	},
	intake.FieldPhysicalActivity: {
		Title:       "PHYSICAL ACTIVITY",
		Description: "Hours of physical activity per week.",
		Details:     "Whole number between 0 and 10.",
	},
	intake.FieldDietScore: {
		Title:       "DIET QUALITY",
		Description: "Self-reported diet quality.",
		Details:     "1 (poor) to 10 (excellent).",
	},
	intake.FieldSleepDuration: {
		Title:       "SLEEP DURATION",
		Description: "Average hours of sleep per night.",
		Details:     "Whole number between 4 and 10.",
	},

	intake.FieldFamilyHistoryAlzheimers: {
		Title:       "FAMILY HISTORY",
		Description: "Has a close relative been diagnosed with Alzheimer's disease?",
		Details:     yesNoDetails,
	},
	intake.FieldCardiovascularDisease: {
		Title:       "CARDIOVASCULAR DISEASE",
		Description: "Any diagnosed cardiovascular disease.",
		Details:     yesNoDetails,
	},
	intake.FieldDiabetes: {
		Title:       "DIABETES",
		Description: "Diagnosed diabetes, type 1 or 2.",
		Details:     yesNoDetails,
	},
	intake.FieldDepression: {
		Title:       "DEPRESSION",
		Description: "Diagnosed depression.",
		Details:     yesNoDetails,
	},
	intake.FieldHeadInjury: {
		Title:       "HEAD INJURY",
		Description: "History of traumatic head injury.",
		Details:     yesNoDetails,
	},
	intake.FieldHypertension: {
		Title:       "HYPERTENSION",
		Description: "Diagnosed high blood pressure.",
		Details:     yesNoDetails,
	},

	intake.FieldSystolicBP: {
		Title:       "SYSTOLIC BLOOD PRESSURE",
		Description: "Pressure during heart contraction, in mmHg.",
		Details:     "Between 90 and 180. Defaults to 120.",
	},
	intake.FieldDiastolicBP: {
		Title:       "DIASTOLIC BLOOD PRESSURE",
		Description: "Pressure between beats, in mmHg.",
		Details:     "Between 60 and 120. Defaults to 80.",
	},
	intake.FieldCholesterolTotal: {
		Title:       "TOTAL CHOLESTEROL",
		Description: "Total serum cholesterol, in mg/dL.",
		Details:     "Between 150 and 300. Defaults to 200.",
	},
	intake.FieldCholesterolLDL: {
		Title:       "LDL CHOLESTEROL",
		Description: "Low-density lipoprotein, in mg/dL.",
		Details:     "Between 50 and 200. Defaults to 100.",
	},
	intake.FieldCholesterolHDL: {
		Title:       "HDL CHOLESTEROL",
		Description: "High-density lipoprotein, in mg/dL.",
		Details:     "Between 20 and 100. Defaults to 50.",
	},
	intake.FieldCholesterolTriglycerides: {
		Title:       "TRIGLYCERIDES",
		Description: "Serum triglycerides, in mg/dL.",
		Details:     "Between 50 and 400. Defaults to 150.",
	},

	intake.FieldMMSE: {
		Title:       "MMSE",
		Description: "Mini-Mental State Examination score.",
		Details:     "0 to 30. Lower scores indicate greater cognitive impairment.",
	},
	intake.FieldFunctionalAssessment: {
		Title:       "FUNCTIONAL ASSESSMENT",
		Description: "Functional ability score.",
		Details:     "0 to 10. Lower scores indicate greater impairment.",
	},
	intake.FieldMemoryComplaints: {
		Title:       "MEMORY COMPLAINTS",
		Description: "Does the patient report memory problems?",
		Details:     yesNoDetails,
	},
	intake.FieldBehavioralProblems: {
		Title:       "BEHAVIORAL PROBLEMS",
		Description: "Observed behavioral problems.",
		Details:     yesNoDetails,
	},
	intake.FieldADL: {
		Title:       "ACTIVITIES OF DAILY LIVING",
		Description: "ADL score.",
		Details:     "0 to 10. Lower scores indicate greater dependence.",
	},

	intake.FieldConfusion: {
		Title:       "CONFUSION",
		Description: "Episodes of confusion.",
		Details:     yesNoDetails,
	},
	intake.FieldDisorientation: {
		Title:       "DISORIENTATION",
		Description: "Disorientation in time or place.",
		Details:     yesNoDetails,
	},
	intake.FieldPersonalityChanges: {
		Title:       "PERSONALITY CHANGES",
		Description: "Noticeable changes in personality.",
		Details:     yesNoDetails,
	},
	intake.FieldDifficultyCompletingTasks: {
		Title:       "DIFFICULTY COMPLETING TASKS",
		Description: "Trouble finishing familiar daily tasks.",
		Details:     yesNoDetails,
	},
	intake.FieldForgetfulness: {
		Title:       "FORGETFULNESS",
		Description: "Frequent forgetfulness.",
		Details:     yesNoDetails,
	},
}

// Lookup returns the help for key. Catalog fields match case-insensitively.
func Lookup(key string) (HelpText, bool) {
	if t, ok := Texts[key]; ok {
		return t, true
	}
	spec, err := intake.LookupField(strings.TrimSpace(key))
	if err != nil {
		return HelpText{}, false
	}
	t, ok := Texts[spec.Name]
	return t, ok
}
