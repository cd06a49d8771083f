package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/quiz"
)

type stubAnswersRepo struct {
	answers *models.QuizAnswers
	err     error
}

func (s *stubAnswersRepo) GetByUserID(_ context.Context, _ int64) (*models.QuizAnswers, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.answers == nil {
		return nil, pgx.ErrNoRows
	}
	return s.answers, nil
}

type sessionPayload struct {
	SessionID  string             `json:"session_id"`
	TotalSteps int                `json:"total_steps"`
	Answers    models.QuizAnswers `json:"answers"`
	StepValid  bool               `json:"step_valid"`
	Completed  bool               `json:"completed"`
	Exited     bool               `json:"exited"`
	Step       struct {
		Index    int    `json:"index"`
		Question string `json:"question"`
	} `json:"step"`
	Results map[string]json.RawMessage `json:"results"`
}

func quizApp(repo *stubAnswersRepo) *fiber.App {
	handler := NewQuizHandler(quiz.NewStore(), repo)
	app := fiber.New()
	sessions := app.Group("/api/quiz/sessions")
	sessions.Post("", handler.CreateSession)
	sessions.Get("/:id", handler.GetSession)
	sessions.Put("/:id/answers", handler.Answer)
	sessions.Post("/:id/next", handler.Next)
	sessions.Post("/:id/back", handler.Back)
	return app
}

func doQuiz(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, sessionPayload) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	var payload sessionPayload
	if resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	resp.Body.Close()
	return resp, payload
}

func TestQuizSessionFlow(t *testing.T) {
	app := quizApp(&stubAnswersRepo{})

	resp, state := doQuiz(t, app, http.MethodPost, "/api/quiz/sessions", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	if state.SessionID == "" || state.TotalSteps != 10 {
		t.Fatalf("unexpected initial state: %+v", state)
	}
	base := "/api/quiz/sessions/" + state.SessionID

	// Advancing with nothing answered must not move the step.
	resp, _ = doQuiz(t, app, http.MethodPost, base+"/next", "")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("empty next: expected 422, got %d", resp.StatusCode)
	}

	resp, state = doQuiz(t, app, http.MethodPut, base+"/answers", `{"field":"diet_type","value":"vegetarian"}`)
	if resp.StatusCode != http.StatusOK || !state.StepValid {
		t.Fatalf("answer: status %d, state %+v", resp.StatusCode, state)
	}

	resp, state = doQuiz(t, app, http.MethodPost, base+"/next", "")
	if resp.StatusCode != http.StatusOK || state.Step.Index != 1 {
		t.Fatalf("next: status %d, step %d", resp.StatusCode, state.Step.Index)
	}

	resp, state = doQuiz(t, app, http.MethodPost, base+"/back", "")
	if resp.StatusCode != http.StatusOK || state.Step.Index != 0 {
		t.Fatalf("back: status %d, step %d", resp.StatusCode, state.Step.Index)
	}
}

func TestQuizBackAtStepZeroDiscardsSession(t *testing.T) {
	app := quizApp(&stubAnswersRepo{})

	_, state := doQuiz(t, app, http.MethodPost, "/api/quiz/sessions", "")
	base := "/api/quiz/sessions/" + state.SessionID

	resp, state := doQuiz(t, app, http.MethodPost, base+"/back", "")
	if resp.StatusCode != http.StatusOK || !state.Exited {
		t.Fatalf("back at 0: status %d, exited %v", resp.StatusCode, state.Exited)
	}

	resp, _ = doQuiz(t, app, http.MethodGet, base, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected discarded session, got %d", resp.StatusCode)
	}
}

func TestQuizCompletionReturnsResults(t *testing.T) {
	app := quizApp(&stubAnswersRepo{})

	_, state := doQuiz(t, app, http.MethodPost, "/api/quiz/sessions", "")
	base := "/api/quiz/sessions/" + state.SessionID

	answers := []string{
		`{"field":"diet_type","value":"vegetarian"}`,
		`{"field":"age","value":"30"}`,
		`{"field":"gender","value":"female"}`,
		`{"field":"weight","value":"70"}`,
		`{"field":"height","value":"170"}`,
		`{"field":"occupation","value":"job"}`,
		`{"field":"hear_about","value":"instagram"}`,
		`{"field":"skin_type","value":"normal"}`,
		`{"field":"hair_type","value":"normal"}`,
	}
	// Steps 6 and 9 are optional; everything else needs its field first.
	writes := map[int]string{
		0: answers[0], 1: answers[1], 2: answers[2], 3: "", 4: answers[5],
		5: answers[6], 6: "", 7: answers[7], 8: answers[8], 9: "",
	}
	for step := 0; step < 10; step++ {
		if step == 3 {
			doQuiz(t, app, http.MethodPut, base+"/answers", answers[3])
			doQuiz(t, app, http.MethodPut, base+"/answers", answers[4])
		} else if writes[step] != "" {
			doQuiz(t, app, http.MethodPut, base+"/answers", writes[step])
		}
		resp, final := doQuiz(t, app, http.MethodPost, base+"/next", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("step %d next: got %d", step, resp.StatusCode)
		}
		if step == 9 {
			if !final.Completed {
				t.Fatal("final next should mark completion")
			}
			score, ok := final.Results["score"]
			if !ok {
				t.Fatal("completion should include results")
			}
			if string(score) != "100" {
				t.Fatalf("healthy profile should score 100, got %s", score)
			}
		}
	}
}

func TestQuizPrefillsStoredAnswers(t *testing.T) {
	stored := &models.QuizAnswers{DietType: "vegetarian", Age: "28"}
	handlerApp := fiber.New()
	handlerApp.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	quizHandler := NewQuizHandler(quiz.NewStore(), &stubAnswersRepo{answers: stored})
	handlerApp.Post("/api/quiz/sessions", quizHandler.CreateSession)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/sessions", strings.NewReader(""))
	resp, err := handlerApp.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var state sessionPayload
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Answers.DietType != "vegetarian" || state.Answers.Age != "28" {
		t.Fatalf("expected prefilled answers, got %+v", state.Answers)
	}
}

func TestQuizUnknownFieldRejected(t *testing.T) {
	app := quizApp(&stubAnswersRepo{})

	_, state := doQuiz(t, app, http.MethodPost, "/api/quiz/sessions", "")
	base := fmt.Sprintf("/api/quiz/sessions/%s/answers", state.SessionID)

	resp, _ := doQuiz(t, app, http.MethodPut, base, `{"field":"favorite_color","value":"green"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.StatusCode)
	}
}
