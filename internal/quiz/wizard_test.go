package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/nutrihz/ConsultBack/internal/models"
)

func completeAnswers() models.QuizAnswers {
	return models.QuizAnswers{
		DietType:   "vegetarian",
		Age:        "29",
		Gender:     "female",
		Weight:     "62",
		Height:     "165",
		Occupation: "job",
		HearAbout:  "instagram",
		SkinType:   "normal",
		HairType:   "normal",
	}
}

func TestNextIsNoOpWhileRequiredFieldEmpty(t *testing.T) {
	w := NewWizard(nil)

	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	if w.Step() != 0 {
		t.Fatalf("step moved to %d on invalid Next", w.Step())
	}

	if err := w.SetField(FieldDietType, "vegetarian"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next after filling field: %v", err)
	}
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
}

func TestEveryRequiredStepGatesNavigation(t *testing.T) {
	answers := completeAnswers()
	required := []int{0, 1, 2, 4, 5, 7, 8}
	for _, step := range required {
		w := NewWizard(&answers)
		// Walk to the step under test, then blank its fields.
		for w.Step() < step {
			if err := w.Next(); err != nil {
				t.Fatalf("walking to step %d: %v", step, err)
			}
		}
		meta, _ := StepAt(step)
		for _, field := range meta.Fields {
			if err := w.SetField(field, ""); err != nil {
				t.Fatalf("blanking %s: %v", field, err)
			}
		}
		if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
			t.Errorf("step %d: expected ErrStepIncomplete, got %v", step, err)
		}
		if w.Step() != step {
			t.Errorf("step %d: index moved to %d", step, w.Step())
		}
	}
}

func TestStepThreeRequiresBothWeightAndHeight(t *testing.T) {
	answers := completeAnswers()
	answers.Height = ""
	w := NewWizard(&answers)
	for w.Step() < 3 {
		if err := w.Next(); err != nil {
			t.Fatalf("walking to step 3: %v", err)
		}
	}
	if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete with missing height, got %v", err)
	}
	if err := w.SetField(FieldHeight, "165"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next with both stats: %v", err)
	}
}

func TestOptionalStepsAlwaysPass(t *testing.T) {
	for _, step := range []int{6, 9} {
		if !StepValid(step, models.QuizAnswers{}) {
			t.Errorf("step %d should be valid when empty", step)
		}
	}
}

func TestBackAtStepZeroExitsWithoutUnderflow(t *testing.T) {
	w := NewWizard(nil)
	w.Back()
	if !w.Exited() {
		t.Fatal("expected exit flag")
	}
	if w.Step() != 0 {
		t.Fatalf("step underflowed to %d", w.Step())
	}
}

func TestBackPreservesPartialInput(t *testing.T) {
	w := NewWizard(nil)
	if err := w.SetField(FieldDietType, "non-vegetarian"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	// Invalid input still lands in the draft.
	if err := w.SetField(FieldAge, "abc"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	w.Back()
	answers := w.Answers()
	if answers.Age != "abc" {
		t.Errorf("partial input lost, age = %q", answers.Age)
	}
	if answers.DietType != "non-vegetarian" {
		t.Errorf("earlier answer lost, diet = %q", answers.DietType)
	}
}

func TestCompletingLastStepFreezesSnapshot(t *testing.T) {
	answers := completeAnswers()
	w := NewWizard(&answers)
	for i := 0; i < TotalSteps-1; i++ {
		if err := w.Next(); err != nil {
			t.Fatalf("Next at step %d: %v", i, err)
		}
	}
	if w.Completed() {
		t.Fatal("completed before confirming last step")
	}
	if err := w.Next(); err != nil {
		t.Fatalf("final Next: %v", err)
	}
	if !w.Completed() {
		t.Fatal("expected completion after final step")
	}
	if err := w.SetField(FieldAge, "99"); err == nil {
		t.Error("expected write rejection after completion")
	}
}

func TestSetConditionToggles(t *testing.T) {
	w := NewWizard(nil)
	if err := w.SetCondition("Diabetes", true); err != nil {
		t.Fatalf("SetCondition: %v", err)
	}
	if err := w.SetCondition("Diabetes", true); err != nil {
		t.Fatalf("SetCondition repeat: %v", err)
	}
	if got := w.Answers().MedicalConditions; len(got) != 1 {
		t.Fatalf("expected single entry, got %v", got)
	}
	if err := w.SetCondition("Diabetes", false); err != nil {
		t.Fatalf("SetCondition uncheck: %v", err)
	}
	if got := w.Answers().MedicalConditions; len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
	if err := w.SetCondition("Not A Condition", true); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestAnswersCompleteAndFirstIncomplete(t *testing.T) {
	if AnswersComplete(models.QuizAnswers{}) {
		t.Error("empty answers reported complete")
	}
	if got := FirstIncompleteStep(models.QuizAnswers{}); got != 0 {
		t.Errorf("expected first incomplete step 0, got %d", got)
	}
	answers := completeAnswers()
	if !AnswersComplete(answers) {
		t.Error("complete answers reported incomplete")
	}
	if got := FirstIncompleteStep(answers); got != TotalSteps {
		t.Errorf("expected %d, got %d", TotalSteps, got)
	}
}

func TestValidateAnswersCatalogs(t *testing.T) {
	answers := completeAnswers()
	if msg := ValidateAnswers(answers); msg != "" {
		t.Fatalf("valid answers rejected: %s", msg)
	}
	answers.SkinType = "glowing"
	if msg := ValidateAnswers(answers); msg == "" {
		t.Error("off-catalog skin type accepted")
	}
}

func TestStoreCreateWithAndExpiry(t *testing.T) {
	store := NewStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	id := store.Create(nil)
	err := store.With(id, func(w *Wizard) error {
		return w.SetField(FieldDietType, "vegetarian")
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}

	current = current.Add(sessionTTL + time.Minute)
	err = store.With(id, func(*Wizard) error { return nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after TTL, got %v", err)
	}
}
