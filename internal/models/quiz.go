package models

// QuizAnswers is the intake questionnaire blob. Numeric fields stay
// string-encoded the way clients submit them; the scoring package parses
// them leniently.
type QuizAnswers struct {
	DietType          string   `json:"diet_type"`
	Age               string   `json:"age"`
	Gender            string   `json:"gender"`
	Weight            string   `json:"weight"`
	Height            string   `json:"height"`
	Occupation        string   `json:"occupation"`
	HearAbout         string   `json:"hear_about"`
	MedicalConditions []string `json:"medical_conditions"`
	SkinType          string   `json:"skin_type"`
	HairType          string   `json:"hair_type"`
	ProductsUsed      string   `json:"products_used"`
}
