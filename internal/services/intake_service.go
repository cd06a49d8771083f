package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/quiz"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

type IntakeService struct {
	db          *pgxpool.Pool
	profileRepo *repository.ProfileRepository
	kycRepo     *repository.KYCRepository
}

func NewIntakeService(db *pgxpool.Pool, profileRepo *repository.ProfileRepository, kycRepo *repository.KYCRepository) *IntakeService {
	return &IntakeService{
		db:          db,
		profileRepo: profileRepo,
		kycRepo:     kycRepo,
	}
}

// CompleteRegistration stores the quiz answers and marks the profile as
// registered, in one transaction. Answers must cover every required step;
// partially filled quizzes are rejected without writing anything.
func (s *IntakeService) CompleteRegistration(
	ctx context.Context,
	userID int64,
	contact repository.ContactInput,
	answers models.QuizAnswers,
) (*models.Profile, error) {
	if !quiz.AnswersComplete(answers) {
		return nil, ErrQuizIncomplete
	}
	if problem := quiz.ValidateAnswers(answers); problem != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, problem)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txProfileRepo := repository.NewProfileRepository(tx)
	txKYCRepo := repository.NewKYCRepository(tx)

	if err := txProfileRepo.CreateEmpty(ctx, userID); err != nil {
		return nil, err
	}
	if err := txKYCRepo.Upsert(ctx, userID, answers); err != nil {
		return nil, err
	}
	profile, err := txProfileRepo.CompleteKYC(ctx, userID, contact)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

// Answers returns the stored quiz answers for score and insight rendering.
func (s *IntakeService) Answers(ctx context.Context, userID int64) (*models.QuizAnswers, error) {
	return s.kycRepo.GetByUserID(ctx, userID)
}
