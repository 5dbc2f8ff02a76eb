// Package session holds the runtime state of one practice test: the chosen
// questions, the student's answers, the countdown, and the scoring rules.
package session

// Setup bounds. A session never exceeds the available question pool, and
// both count and duration have hard caps.
const (
	MaxQuestions     = 100
	MaxDurationMins  = 240
	DefaultQuestions = 60
	DefaultDuration  = 60
)

// Setup is the student's chosen test shape.
type Setup struct {
	QuestionCount   int
	DurationMinutes int
}

// DefaultSetup returns the starting values for the setup screen given the
// number of questions available for the subject.
func DefaultSetup(available int) Setup {
	count := DefaultQuestions
	if available < count {
		count = available
	}
	return Setup{QuestionCount: count, DurationMinutes: DefaultDuration}
}

// ClampCount forces a requested question count into 1..min(available, MaxQuestions).
func ClampCount(n, available int) int {
	limit := available
	if limit > MaxQuestions {
		limit = MaxQuestions
	}
	if limit < 1 {
		limit = 1
	}
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}

// ClampDuration forces a requested duration into 1..MaxDurationMins.
func ClampDuration(mins int) int {
	if mins < 1 {
		return 1
	}
	if mins > MaxDurationMins {
		return MaxDurationMins
	}
	return mins
}
