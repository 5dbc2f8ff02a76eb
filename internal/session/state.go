package session

import (
	"strings"
	"time"

	"github.com/obinna/prepcli/internal/bank"
)

// Phase is the lifecycle stage of a practice test.
type Phase int

const (
	PhaseLoading    Phase = iota // fetching questions, creating the remote record
	PhaseActive                  // answering questions
	PhaseSubmitting              // charge + reconciliation in flight
	PhaseResults                 // showing the scored result
)

// State tracks one running practice test.
type State struct {
	// SessionID is the remote practice-test id.
	SessionID string

	ExamID      int
	ExamName    string
	SubjectID   int
	SubjectName string

	Questions []bank.Question

	// Answers holds the selected option text per question; "" = unanswered.
	Answers []string

	// Checked marks questions whose answer has been verified. Checking is
	// at-most-once per question; changing the answer re-opens it.
	Checked []bool

	Current int
	Phase   Phase

	StartTime time.Time
	Deadline  time.Time

	// TimeExpired is set when the countdown hit zero and the test was
	// force-submitted.
	TimeExpired bool
}

// NewState creates an active session over the given questions.
func NewState(sessionID string, questions []bank.Question, duration time.Duration, now time.Time) *State {
	return &State{
		SessionID: sessionID,
		Questions: questions,
		Answers:   make([]string, len(questions)),
		Checked:   make([]bool, len(questions)),
		Phase:     PhaseActive,
		StartTime: now,
		Deadline:  now.Add(duration),
	}
}

// Question returns the current question.
func (s *State) Question() bank.Question {
	return s.Questions[s.Current]
}

// SelectAnswer records the student's choice for the current question.
// Changing an already-checked answer re-opens the check for that question.
func (s *State) SelectAnswer(answer string) {
	if s.Answers[s.Current] != answer {
		s.Checked[s.Current] = false
	}
	s.Answers[s.Current] = answer
}

// CanCheck reports whether the current question is eligible for a paid
// answer check: an answer is selected and it has not been checked yet.
func (s *State) CanCheck() bool {
	return s.Answers[s.Current] != "" && !s.Checked[s.Current]
}

// MarkChecked consumes the single check for the current question and
// reports whether the selected answer is correct. Callers must gate on
// CanCheck first; the charge happens before this.
func (s *State) MarkChecked() bool {
	s.Checked[s.Current] = true
	return answerCorrect(s.Answers[s.Current], s.Questions[s.Current].Correct)
}

// Next moves to the next question if there is one.
func (s *State) Next() bool {
	if s.Current+1 >= len(s.Questions) {
		return false
	}
	s.Current++
	return true
}

// Prev moves to the previous question if there is one.
func (s *State) Prev() bool {
	if s.Current == 0 {
		return false
	}
	s.Current--
	return true
}

// Jump moves directly to the question at idx, clamped to range.
func (s *State) Jump(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Questions) {
		idx = len(s.Questions) - 1
	}
	s.Current = idx
}

// Answered counts the questions with a selected answer.
func (s *State) Answered() int {
	n := 0
	for _, a := range s.Answers {
		if a != "" {
			n++
		}
	}
	return n
}

// Remaining returns the time left on the clock, floored at zero.
func (s *State) Remaining(now time.Time) time.Duration {
	d := s.Deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Expired reports whether the countdown has run out.
func (s *State) Expired(now time.Time) bool {
	return !now.Before(s.Deadline)
}

// Elapsed returns time spent since the test started, capped at the full
// duration once the clock runs out.
func (s *State) Elapsed(now time.Time) time.Duration {
	if s.Expired(now) {
		return s.Deadline.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

// Matches reports whether a selected answer equals the correct option
// text, ignoring surrounding whitespace.
func Matches(answer, correct string) bool {
	return answerCorrect(answer, correct)
}

func answerCorrect(answer, correct string) bool {
	return strings.TrimSpace(answer) == strings.TrimSpace(correct)
}
