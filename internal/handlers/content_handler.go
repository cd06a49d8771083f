package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the informational pages' copy so the client stays
// free of hardcoded text.
type ContentHandler struct {
	communityLink string
}

func NewContentHandler(communityLink string) *ContentHandler {
	return &ContentHandler{communityLink: communityLink}
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []faqEntry{
	{
		Question: "How does the personalized nutrition consultation work?",
		Answer:   "After completing our comprehensive health quiz, you'll receive a detailed nutrition score and personalized report. Dr. Kirti Jain will then provide expert consultation based on your specific health profile, dietary preferences, and lifestyle. The consultation includes customized meal plans, supplement recommendations, and ongoing support.",
	},
	{
		Question: "What is included in the nutrition plan?",
		Answer:   "Your personalized nutrition plan includes: customized meal plans based on Indian cuisine, portion size guidelines, food substitution options, supplement recommendations if needed, grocery shopping lists, and recipes tailored to your preferences and health goals.",
	},
	{
		Question: "Can I join the WhatsApp community for free?",
		Answer:   "Yes! Our WhatsApp community is free to join and provides daily health tips, nutrition advice, recipe sharing, and peer support. It's a great way to stay motivated and connected with others on their health journey.",
	},
	{
		Question: "How long does it take to see results?",
		Answer:   "Most clients start seeing improvements in energy levels and digestion within 2-3 weeks. Significant weight management results typically become visible after 4-6 weeks, while long-term health improvements develop over 2-3 months with consistent adherence to the plan.",
	},
	{
		Question: "Do you provide support for specific health conditions?",
		Answer:   "Yes, Dr. Kirti Jain specializes in nutrition plans for various health conditions including diabetes, PCOS, thyroid disorders, high blood pressure, digestive issues, and weight management. Each plan is medically informed and tailored to your specific condition.",
	},
	{
		Question: "How do I access my nutrition report and plan?",
		Answer:   "After completing your consultation, you'll receive your personalized nutrition report via email within 24-48 hours. You can also access it through your account dashboard on our app, where you can track your progress and access additional resources.",
	},
	{
		Question: "What if I have food allergies or dietary restrictions?",
		Answer:   "Absolutely! Our health quiz includes detailed questions about food allergies, intolerances, and dietary preferences (vegetarian, vegan, Jain, etc.). Dr. Kirti will create a plan that works around your restrictions while ensuring you get all necessary nutrients.",
	},
	{
		Question: "How often should I have follow-up consultations?",
		Answer:   "We recommend follow-up consultations every 2-4 weeks initially to track progress and make necessary adjustments. As you progress, the frequency can be reduced to monthly or quarterly check-ins, depending on your goals and progress.",
	},
}

type communityHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var communityHighlights = []communityHighlight{
	{"Daily Health Tips", "Get expert nutrition advice, healthy recipes, and wellness tips delivered daily to your WhatsApp."},
	{"Peer Support Network", "Connect with like-minded individuals on similar health journeys for motivation and encouragement."},
	{"Recipe Sharing", "Discover and share healthy, delicious recipes that fit your dietary preferences and restrictions."},
	{"Quick Q&A Sessions", "Get quick answers to your nutrition questions from Dr. Kirti and experienced community members."},
	{"Exclusive Content", "Access to exclusive meal plans, workout tips, and health challenges not available elsewhere."},
	{"Weekly Live Sessions", "Join live Q&A sessions, cooking demonstrations, and health workshops with Dr. Kirti."},
}

func (h *ContentHandler) FAQ(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"faqs": faqs})
}

func (h *ContentHandler) Community(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"join_link":  h.communityLink,
		"highlights": communityHighlights,
		"guidelines": []string{
			"Be respectful and supportive of all members",
			"Share only evidence-based health information",
		},
	})
}
