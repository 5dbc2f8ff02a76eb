// Package assist generates and caches the paid study aids attached to a
// question: AI explanations and worked examples. Each payload is paid for
// once; the cache makes every later view of it free.
package assist

// Explanation tells the student why the correct answer is correct.
type Explanation struct {
	QuestionID string
	Text       string

	// Fallback marks a synthesized payload used when generation failed
	// after the charge was already committed.
	Fallback bool
}

// Example is a worked problem similar to the question it was requested for.
type Example struct {
	QuestionID string
	Problem    string
	Solution   string
	Answer     string
	Fallback   bool
}
