package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// UserIRI, ExamIRI, SubjectIRI and QuestionIRI build the entity references
// the platform expects on writes.
func UserIRI(id string) string { return "/api/users/" + id }

func ExamIRI(id int) string { return "/api/exams/" + strconv.Itoa(id) }

func SubjectIRI(id int) string { return "/api/subjects/" + strconv.Itoa(id) }

func QuestionIRI(id string) string { return "/api/questions/" + id }

// PracticeTestInput describes a new practice-test record.
type PracticeTestInput struct {
	UserIRI         string
	ExamIRI         string
	SubjectIRI      string
	QuestionCount   int
	DurationMinutes int
	StartedAt       time.Time
}

// CreatePracticeTest registers a session with the platform and returns the
// remote test id.
func (c *Client) CreatePracticeTest(ctx context.Context, input PracticeTestInput) (string, error) {
	body := map[string]any{
		"user":          input.UserIRI,
		"exam":          input.ExamIRI,
		"subject":       input.SubjectIRI,
		"questionCount": input.QuestionCount,
		"duration":      input.DurationMinutes,
		"startedAt":     input.StartedAt.UTC().Format(time.RFC3339),
	}

	var res struct {
		ID  json.RawMessage `json:"id"`
		Ref string          `json:"@id"`
	}
	if err := c.post(ctx, "/api/practice_tests", body, &res); err != nil {
		return "", fmt.Errorf("create practice test: %w", err)
	}

	if len(res.ID) > 0 {
		var n int
		if err := json.Unmarshal(res.ID, &n); err == nil {
			return strconv.Itoa(n), nil
		}
		var s string
		if err := json.Unmarshal(res.ID, &s); err == nil && s != "" {
			return s, nil
		}
	}
	if id := idFromIRI(res.Ref); id != 0 {
		return strconv.Itoa(id), nil
	}
	return "", fmt.Errorf("create practice test: response carries no id")
}

// SaveScore patches the final score and completion time onto an existing
// practice test.
func (c *Client) SaveScore(ctx context.Context, testID string, score float64, completedAt time.Time) error {
	body := map[string]any{
		"score":       score,
		"completedAt": completedAt.UTC().Format(time.RFC3339),
	}
	path := "/api/practice_tests/" + testID
	if err := c.patch(ctx, path, body, nil); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// SubmissionInput is one answered question to record upstream.
type SubmissionInput struct {
	PracticeTestIRI string
	QuestionIRI     string
	UserAnswer      string
	IsCorrect       bool
}

// CreateSubmission records a single answered question.
func (c *Client) CreateSubmission(ctx context.Context, input SubmissionInput) error {
	body := map[string]any{
		"practiceTest": input.PracticeTestIRI,
		"question":     input.QuestionIRI,
		"userAnswer":   input.UserAnswer,
		"isCorrect":    input.IsCorrect,
	}
	if err := c.post(ctx, "/api/test_submissions", body, nil); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}
