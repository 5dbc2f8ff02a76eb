package reconcile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/obinna/prepcli/internal/api"
)

type fakeUploader struct {
	mu          sync.Mutex
	scoreErr    error
	scoreCalls  int
	submissions []api.SubmissionInput
	failAnswers map[string]bool // answers whose submission should fail
}

func (f *fakeUploader) SaveScore(ctx context.Context, testID string, score float64, completedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scoreCalls++
	return f.scoreErr
}

func (f *fakeUploader) CreateSubmission(ctx context.Context, input api.SubmissionInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAnswers[input.UserAnswer] {
		return errors.New("rejected")
	}
	f.submissions = append(f.submissions, input)
	return nil
}

func testInput() Input {
	return Input{
		TestID:      "101",
		Score:       60,
		CompletedAt: time.Now(),
		Items: []Item{
			{QuestionID: "1", Answer: "a", Correct: true},
			{QuestionID: "2", Answer: "b", Correct: false},
			{QuestionID: "3", Answer: "c", Correct: true},
		},
	}
}

func TestRunHappyPath(t *testing.T) {
	up := &fakeUploader{}
	out := New(up, nil).Run(context.Background(), testInput())

	if !out.ScoreSaved {
		t.Error("score should be saved")
	}
	if out.Sent != 3 || out.Total != 3 {
		t.Errorf("sent = %d/%d, want 3/3", out.Sent, out.Total)
	}

	for _, s := range up.submissions {
		if s.PracticeTestIRI != "/api/practice_tests/101" {
			t.Errorf("practice test IRI = %q", s.PracticeTestIRI)
		}
		if !strings.HasPrefix(s.QuestionIRI, "/api/questions/") {
			t.Errorf("question IRI = %q", s.QuestionIRI)
		}
	}
}

func TestScoreFailureDoesNotStopSubmissions(t *testing.T) {
	up := &fakeUploader{scoreErr: errors.New("503")}
	out := New(up, nil).Run(context.Background(), testInput())

	if out.ScoreSaved {
		t.Error("score save should have failed")
	}
	if out.ScoreErr == nil {
		t.Error("expected score error")
	}
	// The fan-out still runs in full.
	if out.Sent != 3 {
		t.Errorf("sent = %d, want 3", out.Sent)
	}
}

func TestPartialSubmissionFailures(t *testing.T) {
	up := &fakeUploader{failAnswers: map[string]bool{"b": true}}
	out := New(up, nil).Run(context.Background(), testInput())

	if out.Sent != 2 || out.Total != 3 {
		t.Errorf("sent = %d/%d, want 2/3", out.Sent, out.Total)
	}
	// The failing item must not block its siblings.
	if len(up.submissions) != 2 {
		t.Errorf("submissions = %d, want 2", len(up.submissions))
	}
}

func TestLocalOnlySessionIsSkipped(t *testing.T) {
	up := &fakeUploader{}
	input := testInput()
	input.TestID = ""

	out := New(up, nil).Run(context.Background(), input)
	if !out.Skipped {
		t.Error("expected skip")
	}
	if up.scoreCalls != 0 || len(up.submissions) != 0 {
		t.Error("no network calls expected for a local-only session")
	}
}
