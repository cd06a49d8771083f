package repository

import (
	"context"
	"encoding/json"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type KYCRepository struct {
	db DBTX
}

func NewKYCRepository(db DBTX) *KYCRepository {
	return &KYCRepository{db: db}
}

func (r *KYCRepository) Upsert(ctx context.Context, userID int64, answers models.QuizAnswers) error {
	blob, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO kyc_responses (user_id, responses, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET responses = EXCLUDED.responses, updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, userID, blob)
	return err
}

func (r *KYCRepository) GetByUserID(ctx context.Context, userID int64) (*models.QuizAnswers, error) {
	query := `SELECT responses FROM kyc_responses WHERE user_id = $1`
	var blob []byte
	if err := r.db.QueryRow(ctx, query, userID).Scan(&blob); err != nil {
		return nil, err
	}
	var answers models.QuizAnswers
	if err := json.Unmarshal(blob, &answers); err != nil {
		return nil, err
	}
	return &answers, nil
}
