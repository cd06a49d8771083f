package quiz

import (
	"strings"

	"github.com/nutrihz/ConsultBack/internal/models"
)

// TotalSteps is the number of questions in the intake wizard.
const TotalSteps = 10

type Field string

const (
	FieldDietType          Field = "diet_type"
	FieldAge               Field = "age"
	FieldGender            Field = "gender"
	FieldWeight            Field = "weight"
	FieldHeight            Field = "height"
	FieldOccupation        Field = "occupation"
	FieldHearAbout         Field = "hear_about"
	FieldMedicalConditions Field = "medical_conditions"
	FieldSkinType          Field = "skin_type"
	FieldHairType          Field = "hair_type"
	FieldProductsUsed      Field = "products_used"
)

var MedicalConditionOptions = []string{
	"Blood Pressure", "Diabetes", "Cardiac Disease", "Thyroid", "PCOS/PCOD",
	"Constipation", "Migraine", "Back Pain", "Knee Pain", "Bodyache",
	"Hyperacidity", "Surgery (if any)",
}

var (
	DietTypeOptions   = []string{"vegetarian", "non-vegetarian"}
	GenderOptions     = []string{"male", "female"}
	OccupationOptions = []string{"job", "business", "other"}
	HearAboutOptions  = []string{"facebook", "instagram", "website"}
	SkinTypeOptions   = []string{"dry", "normal", "oily", "acne", "pigmentation"}
	HairTypeOptions   = []string{"dry", "normal", "oily", "dandruff", "itchy-scalp", "hairfall"}
)

type Step struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Message  string   `json:"message"`
	Fields   []Field  `json:"fields"`
	Options  []string `json:"options,omitempty"`
	Optional bool     `json:"optional"`
}

var steps = [TotalSteps]Step{
	{0, "What's your dietary preference?", "Great start! Let's learn about your dietary preferences", []Field{FieldDietType}, DietTypeOptions, false},
	{1, "What's your age?", "Perfect! Now tell us about yourself", []Field{FieldAge}, nil, false},
	{2, "What's your gender?", "Excellent! Your health journey is taking shape", []Field{FieldGender}, GenderOptions, false},
	{3, "Tell us about your physical stats", "Amazing progress! Physical details help us personalize better", []Field{FieldWeight, FieldHeight}, nil, false},
	{4, "What's your occupation?", "Wonderful! Understanding your lifestyle is key", []Field{FieldOccupation}, OccupationOptions, false},
	{5, "How did you hear about us?", "Fantastic! This helps us tailor your experience", []Field{FieldHearAbout}, HearAboutOptions, false},
	{6, "Any medical conditions?", "Brilliant! Health history is crucial for personalization", []Field{FieldMedicalConditions}, MedicalConditionOptions, true},
	{7, "What's your skin type?", "Outstanding! Skin health reflects overall wellness", []Field{FieldSkinType}, SkinTypeOptions, false},
	{8, "What's your hair type?", "Superb! Hair health indicates nutritional status", []Field{FieldHairType}, HairTypeOptions, false},
	{9, "Any specific products you use?", "Almost there! Final details for your perfect plan", []Field{FieldProductsUsed}, nil, true},
}

// StepAt returns the metadata for a step index.
func StepAt(index int) (Step, bool) {
	if index < 0 || index >= TotalSteps {
		return Step{}, false
	}
	return steps[index], true
}

// StepValid reports whether the answers satisfy the step's validator.
// Optional steps (medical conditions, products used) always pass.
func StepValid(index int, answers models.QuizAnswers) bool {
	switch index {
	case 0:
		return answers.DietType != ""
	case 1:
		return answers.Age != ""
	case 2:
		return answers.Gender != ""
	case 3:
		return answers.Weight != "" && answers.Height != ""
	case 4:
		return answers.Occupation != ""
	case 5:
		return answers.HearAbout != ""
	case 6:
		return true
	case 7:
		return answers.SkinType != ""
	case 8:
		return answers.HairType != ""
	case 9:
		return true
	default:
		return false
	}
}

// AnswersComplete reports whether every required step is satisfied.
func AnswersComplete(answers models.QuizAnswers) bool {
	for i := 0; i < TotalSteps; i++ {
		if !StepValid(i, answers) {
			return false
		}
	}
	return true
}

// FirstIncompleteStep returns the index of the first unsatisfied step, or
// TotalSteps when the answers are complete.
func FirstIncompleteStep(answers models.QuizAnswers) int {
	for i := 0; i < TotalSteps; i++ {
		if !StepValid(i, answers) {
			return i
		}
	}
	return TotalSteps
}

func validOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

func validCondition(condition string) bool {
	return validOption(MedicalConditionOptions, condition)
}

// ValidateAnswers checks a full answers payload against the fixed catalogs.
// Empty optional fields pass; anything off-catalog is named in the error.
func ValidateAnswers(answers models.QuizAnswers) string {
	if answers.DietType != "" && !validOption(DietTypeOptions, answers.DietType) {
		return "diet_type must be one of: " + strings.Join(DietTypeOptions, ", ")
	}
	if answers.Gender != "" && !validOption(GenderOptions, answers.Gender) {
		return "gender must be one of: " + strings.Join(GenderOptions, ", ")
	}
	if answers.Occupation != "" && !validOption(OccupationOptions, answers.Occupation) {
		return "occupation must be one of: " + strings.Join(OccupationOptions, ", ")
	}
	if answers.HearAbout != "" && !validOption(HearAboutOptions, answers.HearAbout) {
		return "hear_about must be one of: " + strings.Join(HearAboutOptions, ", ")
	}
	if answers.SkinType != "" && !validOption(SkinTypeOptions, answers.SkinType) {
		return "skin_type must be one of: " + strings.Join(SkinTypeOptions, ", ")
	}
	if answers.HairType != "" && !validOption(HairTypeOptions, answers.HairType) {
		return "hair_type must be one of: " + strings.Join(HairTypeOptions, ", ")
	}
	for _, condition := range answers.MedicalConditions {
		if !validCondition(condition) {
			return "unknown medical condition: " + condition
		}
	}
	return ""
}
