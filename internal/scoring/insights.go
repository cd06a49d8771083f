package scoring

import (
	"strings"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type Insight struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const maxTips = 5

// Insights builds the dashboard's personalized insight cards.
func Insights(answers models.QuizAnswers) []Insight {
	insights := []Insight{}

	if bmi, ok := AnswersBMI(answers); ok {
		switch {
		case bmi < 18.5:
			insights = append(insights, Insight{
				Kind:        "weight",
				Title:       "Weight Management Focus",
				Description: "Your BMI suggests you may benefit from a nutrition plan focused on healthy weight gain with nutrient-dense foods.",
			})
		case bmi >= 25:
			insights = append(insights, Insight{
				Kind:        "weight",
				Title:       "Weight Optimization",
				Description: "A balanced nutrition plan can help you achieve optimal weight while maintaining energy and health.",
			})
		default:
			insights = append(insights, Insight{
				Kind:        "weight",
				Title:       "Healthy BMI Range",
				Description: "Great! You're in a healthy BMI range. Focus on maintaining this with balanced nutrition.",
			})
		}
	}

	if len(answers.MedicalConditions) > 0 {
		insights = append(insights, Insight{
			Kind:        "conditions",
			Title:       "Health Condition Support",
			Description: "Your nutrition plan will address " + strings.ToLower(strings.Join(answers.MedicalConditions, ", ")) + " with specific dietary recommendations.",
		})
	}

	if answers.SkinType == "acne" || answers.HairType == "hairfall" {
		insights = append(insights, Insight{
			Kind:        "beauty",
			Title:       "Beauty & Wellness",
			Description: "Your plan includes specific nutrients for healthy skin and hair, addressing your current concerns.",
		})
	}

	return insights
}

// Tips returns up to five actionable recommendations keyed on the answers.
func Tips(answers models.QuizAnswers) []string {
	tips := []string{}

	if answers.DietType == "vegetarian" {
		tips = append(tips,
			"Include protein-rich foods like lentils, quinoa, and nuts in every meal",
			"Ensure adequate B12 intake through supplements or fortified foods",
		)
	} else {
		tips = append(tips,
			"Balance your plate with lean proteins, vegetables, and whole grains",
			"Limit processed meats and focus on fresh, lean options",
		)
	}

	for _, condition := range answers.MedicalConditions {
		if condition == "Diabetes" {
			tips = append(tips, "Monitor carbohydrate portions and focus on low glycemic index foods")
			break
		}
	}

	if answers.Occupation == "job" {
		tips = append(tips, "Pack healthy snacks for busy workdays to avoid processed foods")
	}

	tips = append(tips,
		"Stay hydrated with 8-10 glasses of water daily",
		"Include colorful vegetables in every meal for optimal nutrition",
	)

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
