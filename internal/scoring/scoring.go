package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Healthy     BMICategory = "Healthy"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
	Unknown     BMICategory = "Unknown"
)

const (
	maxScore = 100
	minScore = 30
)

var highRiskConditions = map[string]struct{}{
	"Blood Pressure":  {},
	"Diabetes":        {},
	"Cardiac Disease": {},
}

var mediumRiskConditions = map[string]struct{}{
	"Thyroid":   {},
	"PCOS/PCOD": {},
}

// BMI computes weight/(height m)^2 rounded to one decimal. ok is false when
// either input is missing or non-positive.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10, true
}

func ClassifyBMI(bmi float64, ok bool) BMICategory {
	switch {
	case !ok:
		return Unknown
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Healthy
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// AnswersBMI parses the string-encoded weight/height off the questionnaire.
// Malformed numbers yield ok=false rather than an error.
func AnswersBMI(answers models.QuizAnswers) (float64, bool) {
	weight, werr := strconv.ParseFloat(strings.TrimSpace(answers.Weight), 64)
	height, herr := strconv.ParseFloat(strings.TrimSpace(answers.Height), 64)
	if werr != nil || herr != nil {
		return 0, false
	}
	return BMI(weight, height)
}

// NutritionScore derives the 30-100 wellness index from the questionnaire.
// Deterministic and side-effect free; missing or malformed numeric input
// simply skips the BMI penalty.
func NutritionScore(answers models.QuizAnswers) int {
	score := maxScore

	if bmi, ok := AnswersBMI(answers); ok {
		switch {
		case bmi < 18.5 || bmi >= 30:
			score -= 20
		case bmi >= 25:
			score -= 10
		}
	}

	for _, condition := range answers.MedicalConditions {
		if _, ok := highRiskConditions[condition]; ok {
			score -= 15
		} else if _, ok := mediumRiskConditions[condition]; ok {
			score -= 8
		} else {
			score -= 3
		}
	}

	if answers.SkinType == "acne" || answers.SkinType == "pigmentation" {
		score -= 5
	}
	if answers.HairType == "hairfall" || answers.HairType == "dandruff" {
		score -= 5
	}

	if score < minScore {
		score = minScore
	}
	return score
}
