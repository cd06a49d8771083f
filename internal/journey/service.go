package journey

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type answersReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.QuizAnswers, error)
}

type appointmentLister interface {
	ListAppointments(ctx context.Context, userID int64) ([]models.AppointmentDetail, error)
}

// Actions recognized in the one-shot navigation parameter.
const (
	ActionQuiz    = "quiz"
	ActionBooking = "booking"
)

type Service struct {
	profileRepo  profileReader
	answersRepo  answersReader
	appointments appointmentLister
}

func NewService(profileRepo profileReader, answersRepo answersReader, appointments appointmentLister) *Service {
	return &Service{
		profileRepo:  profileRepo,
		answersRepo:  answersRepo,
		appointments: appointments,
	}
}

// InitialState is everything a client needs to render its first screen. The
// navigation action is consumed here exactly once; ActionConsumed tells the
// client to clear it from routing state.
type InitialState struct {
	Step           Step                       `json:"step"`
	AuthModal      bool                       `json:"auth_modal"`
	ActionConsumed bool                       `json:"action_consumed"`
	QuizData       *models.QuizAnswers        `json:"quiz_data,omitempty"`
	Profile        *models.Profile            `json:"profile,omitempty"`
	Appointments   []models.AppointmentDetail `json:"appointments,omitempty"`
}

// Resolve computes the landing step for a page load. userID is nil for
// anonymous visitors. Nothing is reported to the caller until the session and
// profile checks have finished, so a returning user never sees an
// unauthenticated flash.
func (s *Service) Resolve(ctx context.Context, userID *int64, action string) (*InitialState, error) {
	state := &InitialState{Step: StepLanding}

	if userID != nil {
		profile, err := s.profileRepo.GetByUserID(ctx, *userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if profile != nil && profile.KYCCompleted {
			if err := s.loadDashboard(ctx, *userID, profile, state); err != nil {
				return nil, err
			}
		}
	}

	s.applyAction(state, action, userID != nil)
	return state, nil
}

// loadDashboard fetches the stored answers and appointment history in
// parallel and routes the returning user straight to the dashboard. A profile
// flagged complete but with no stored answers falls back to the normal flow.
func (s *Service) loadDashboard(ctx context.Context, userID int64, profile *models.Profile, state *InitialState) error {
	var (
		answers      *models.QuizAnswers
		appointments []models.AppointmentDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		answers, err = s.answersRepo.GetByUserID(gctx, userID)
		if errors.Is(err, pgx.ErrNoRows) {
			answers = nil
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = s.appointments.ListAppointments(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if answers == nil {
		return nil
	}

	state.Step = StepDashboard
	state.QuizData = answers
	state.Profile = profile
	state.Appointments = appointments
	return nil
}

func (s *Service) applyAction(state *InitialState, action string, authenticated bool) {
	switch action {
	case ActionQuiz:
		state.Step = StepQuiz
		state.ActionConsumed = true
	case ActionBooking:
		state.ActionConsumed = true
		if !authenticated {
			state.Step = StepLanding
			state.AuthModal = true
			return
		}
		state.Step = StepBooking
	}
}
