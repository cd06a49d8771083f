package quiz

import (
	"errors"

	"github.com/nutrihz/ConsultBack/internal/models"
)

var (
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrUnknownField   = errors.New("unknown field")
)

// Wizard walks the ten intake questions in order. Field writes always land in
// the draft, valid or not, so backtracking keeps partial input. Forward
// navigation is gated by the active step's validator.
type Wizard struct {
	step     int
	answers  models.QuizAnswers
	complete bool
	exited   bool
}

// NewWizard starts at step 0. initial pre-fills the draft for returning users
// retaking the quiz.
func NewWizard(initial *models.QuizAnswers) *Wizard {
	w := &Wizard{}
	if initial != nil {
		w.answers = *initial
		if w.answers.MedicalConditions != nil {
			conditions := make([]string, len(initial.MedicalConditions))
			copy(conditions, initial.MedicalConditions)
			w.answers.MedicalConditions = conditions
		}
	}
	return w
}

func (w *Wizard) Step() int { return w.step }

// Answers returns a snapshot of the draft.
func (w *Wizard) Answers() models.QuizAnswers {
	answers := w.answers
	if w.answers.MedicalConditions != nil {
		conditions := make([]string, len(w.answers.MedicalConditions))
		copy(conditions, w.answers.MedicalConditions)
		answers.MedicalConditions = conditions
	}
	return answers
}

// Completed reports whether the final step has been confirmed.
func (w *Wizard) Completed() bool { return w.complete }

// Exited reports whether Back was pressed on step 0.
func (w *Wizard) Exited() bool { return w.exited }

// StepValid reports whether the active step's validator passes.
func (w *Wizard) StepValid() bool {
	return StepValid(w.step, w.answers)
}

// Next advances one step when the active validator passes. Confirming the
// last step marks the wizard complete and freezes the snapshot instead of
// advancing. Returns ErrStepIncomplete (step unchanged) otherwise.
func (w *Wizard) Next() error {
	if w.complete {
		return nil
	}
	if !w.StepValid() {
		return ErrStepIncomplete
	}
	if w.step < TotalSteps-1 {
		w.step++
		return nil
	}
	w.complete = true
	return nil
}

// Back decrements the step. On step 0 it flags exit and leaves the index
// untouched; the index never underflows.
func (w *Wizard) Back() {
	if w.step == 0 {
		w.exited = true
		return
	}
	w.step--
}

// SetField writes a single-valued answer field. The write is unconditional;
// validity only matters when navigating forward.
func (w *Wizard) SetField(field Field, value string) error {
	if w.complete {
		return errors.New("quiz already completed")
	}
	switch field {
	case FieldDietType:
		w.answers.DietType = value
	case FieldAge:
		w.answers.Age = value
	case FieldGender:
		w.answers.Gender = value
	case FieldWeight:
		w.answers.Weight = value
	case FieldHeight:
		w.answers.Height = value
	case FieldOccupation:
		w.answers.Occupation = value
	case FieldHearAbout:
		w.answers.HearAbout = value
	case FieldSkinType:
		w.answers.SkinType = value
	case FieldHairType:
		w.answers.HairType = value
	case FieldProductsUsed:
		w.answers.ProductsUsed = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetCondition toggles one entry of the multi-select medical conditions step.
func (w *Wizard) SetCondition(condition string, checked bool) error {
	if w.complete {
		return errors.New("quiz already completed")
	}
	if !validCondition(condition) {
		return ErrUnknownField
	}
	if checked {
		for _, existing := range w.answers.MedicalConditions {
			if existing == condition {
				return nil
			}
		}
		w.answers.MedicalConditions = append(w.answers.MedicalConditions, condition)
		return nil
	}
	filtered := w.answers.MedicalConditions[:0]
	for _, existing := range w.answers.MedicalConditions {
		if existing != condition {
			filtered = append(filtered, existing)
		}
	}
	w.answers.MedicalConditions = filtered
	return nil
}
