package journey

import "errors"

// Step is a screen of the consultation funnel.
type Step string

const (
	StepLanding      Step = "landing"
	StepQuiz         Step = "quiz"
	StepRegistration Step = "registration"
	StepProcessing   Step = "processing"
	StepDashboard    Step = "dashboard"
	StepBooking      Step = "booking"
	StepSuccess      Step = "success"
)

type Event string

const (
	EventStartQuiz        Event = "start_quiz"
	EventBookAppointment  Event = "book_appointment"
	EventQuizCompleted    Event = "quiz_completed"
	EventProfileSaved     Event = "profile_saved"
	EventProcessingDone   Event = "processing_done"
	EventBookConsultation Event = "book_consultation"
	EventRetakeQuiz       Event = "retake_quiz"
	EventPaymentSucceeded Event = "payment_succeeded"
	EventBack             Event = "back"
	EventReturnHome       Event = "return_home"
)

var ErrInvalidTransition = errors.New("invalid journey transition")

// Transition is the result of applying an event: the next step, plus whether
// the client should open the sign-in surface.
type Transition struct {
	Next      Step
	AuthModal bool
}

// Advance applies one event to the funnel. Completing the quiz while signed
// out parks the visitor on landing with the auth modal open; their draft
// answers stay client-side until they sign in.
func Advance(current Step, event Event, authenticated bool) (Transition, error) {
	switch current {
	case StepLanding:
		switch event {
		case EventStartQuiz:
			return Transition{Next: StepQuiz}, nil
		case EventBookAppointment:
			if !authenticated {
				return Transition{Next: StepLanding, AuthModal: true}, nil
			}
			return Transition{Next: StepBooking}, nil
		}
	case StepQuiz:
		if event == EventQuizCompleted {
			if !authenticated {
				return Transition{Next: StepLanding, AuthModal: true}, nil
			}
			return Transition{Next: StepRegistration}, nil
		}
		if event == EventBack {
			return Transition{Next: StepLanding}, nil
		}
	case StepRegistration:
		if event == EventProfileSaved {
			return Transition{Next: StepProcessing}, nil
		}
		if event == EventBack {
			return Transition{Next: StepQuiz}, nil
		}
	case StepProcessing:
		if event == EventProcessingDone {
			return Transition{Next: StepDashboard}, nil
		}
	case StepDashboard:
		switch event {
		case EventBookConsultation:
			return Transition{Next: StepBooking}, nil
		case EventRetakeQuiz:
			return Transition{Next: StepQuiz}, nil
		}
	case StepBooking:
		switch event {
		case EventPaymentSucceeded:
			return Transition{Next: StepSuccess}, nil
		case EventBack:
			return Transition{Next: StepDashboard}, nil
		}
	case StepSuccess:
		if event == EventReturnHome {
			return Transition{Next: StepLanding}, nil
		}
	}
	return Transition{}, ErrInvalidTransition
}
