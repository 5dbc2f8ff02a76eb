package session

import "time"

// QuestionResult pairs one question with the student's answer.
type QuestionResult struct {
	Index      int
	QuestionID string
	Answer     string
	Correct    bool
}

// Result is the scored outcome of a finished test.
type Result struct {
	SessionID string
	Total     int
	Attempted int
	Correct   int
	Score     float64 // percentage 0..100
	Duration  time.Duration
	Questions []QuestionResult
}

// Score computes the final result. Unanswered questions count as wrong;
// an empty test scores zero.
func (s *State) Score(now time.Time) Result {
	r := Result{
		SessionID: s.SessionID,
		Total:     len(s.Questions),
		Duration:  s.Elapsed(now),
	}

	for i, q := range s.Questions {
		answer := s.Answers[i]
		correct := answer != "" && answerCorrect(answer, q.Correct)
		if answer != "" {
			r.Attempted++
		}
		if correct {
			r.Correct++
		}
		r.Questions = append(r.Questions, QuestionResult{
			Index:      i,
			QuestionID: q.ID,
			Answer:     answer,
			Correct:    correct,
		})
	}

	if r.Total > 0 {
		r.Score = float64(r.Correct) / float64(r.Total) * 100
	}
	return r
}
