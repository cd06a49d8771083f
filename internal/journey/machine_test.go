package journey

import (
	"errors"
	"testing"
)

func TestAdvanceTransitionTable(t *testing.T) {
	cases := []struct {
		name          string
		current       Step
		event         Event
		authenticated bool
		want          Step
		authModal     bool
	}{
		{"landing start quiz", StepLanding, EventStartQuiz, false, StepQuiz, false},
		{"landing book authed", StepLanding, EventBookAppointment, true, StepBooking, false},
		{"landing book anonymous", StepLanding, EventBookAppointment, false, StepLanding, true},
		{"quiz complete authed", StepQuiz, EventQuizCompleted, true, StepRegistration, false},
		{"quiz complete anonymous", StepQuiz, EventQuizCompleted, false, StepLanding, true},
		{"quiz back", StepQuiz, EventBack, false, StepLanding, false},
		{"registration saved", StepRegistration, EventProfileSaved, true, StepProcessing, false},
		{"processing done", StepProcessing, EventProcessingDone, true, StepDashboard, false},
		{"dashboard book", StepDashboard, EventBookConsultation, true, StepBooking, false},
		{"dashboard retake", StepDashboard, EventRetakeQuiz, true, StepQuiz, false},
		{"booking paid", StepBooking, EventPaymentSucceeded, true, StepSuccess, false},
		{"booking back", StepBooking, EventBack, true, StepDashboard, false},
		{"success home", StepSuccess, EventReturnHome, true, StepLanding, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Advance(tc.current, tc.event, tc.authenticated)
			if err != nil {
				t.Fatalf("Advance: %v", err)
			}
			if got.Next != tc.want {
				t.Errorf("next = %s, want %s", got.Next, tc.want)
			}
			if got.AuthModal != tc.authModal {
				t.Errorf("authModal = %v, want %v", got.AuthModal, tc.authModal)
			}
		})
	}
}

func TestAdvanceRejectsUnknownTransitions(t *testing.T) {
	cases := []struct {
		current Step
		event   Event
	}{
		{StepLanding, EventPaymentSucceeded},
		{StepProcessing, EventStartQuiz},
		{StepSuccess, EventQuizCompleted},
		{StepDashboard, EventProfileSaved},
	}
	for _, tc := range cases {
		if _, err := Advance(tc.current, tc.event, true); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Advance(%s, %s): expected ErrInvalidTransition, got %v", tc.current, tc.event, err)
		}
	}
}
