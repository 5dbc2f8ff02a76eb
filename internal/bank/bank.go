// Package bank loads and normalizes questions from the platform. Question
// payloads are irregular: options arrive as arrays, letter-keyed maps, or
// flat optionA..optionD fields, and the correct answer may be a letter or
// the literal option text. The bank flattens all of that into one shape
// before a session ever sees it.
package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/obinna/prepcli/internal/api"
)

// Topic groups questions within a subject.
type Topic struct {
	ID   int
	Name string
}

// Question is the normalized form every downstream consumer works with.
type Question struct {
	ID        string
	Text      string
	Options   []string
	Correct   string // literal option text, not a letter
	Topic     Topic
	ExamID    int
	SubjectID int
}

// Catalog is the slice of the platform API the loader needs.
type Catalog interface {
	ListSubjects(ctx context.Context) ([]api.Subject, error)
	ListQuestions(ctx context.Context) ([]json.RawMessage, error)
}

// SubjectCount pairs a subject with its usable-question tally.
type SubjectCount struct {
	Subject api.Subject
	Count   int
}

// Loader fetches and normalizes the question bank.
type Loader struct {
	catalog Catalog
}

// NewLoader creates a Loader over the given catalog.
func NewLoader(catalog Catalog) *Loader {
	return &Loader{catalog: catalog}
}

// ForSubject returns every usable question for the exam/subject pair.
// Malformed questions (no text, fewer than two options, no correct
// answer) are dropped rather than failing the whole load.
func (l *Loader) ForSubject(ctx context.Context, examID, subjectID int) ([]Question, error) {
	items, err := l.catalog.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	var questions []Question
	for _, item := range items {
		q, ok := Normalize(item)
		if !ok {
			continue
		}
		if q.ExamID != examID || q.SubjectID != subjectID {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// SubjectsWithQuestions returns the exam's subjects that have at least one
// usable question, each with its question count. A subject without
// practice material is not offered.
func (l *Loader) SubjectsWithQuestions(ctx context.Context, examID int) ([]SubjectCount, error) {
	subjects, err := l.catalog.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	items, err := l.catalog.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	counts := make(map[int]int)
	for _, item := range items {
		q, ok := Normalize(item)
		if !ok || q.ExamID != examID {
			continue
		}
		counts[q.SubjectID]++
	}

	var out []SubjectCount
	for _, sub := range subjects {
		if api.RefID(sub.Exam) != examID {
			continue
		}
		if n := counts[sub.ID]; n > 0 {
			out = append(out, SubjectCount{Subject: sub, Count: n})
		}
	}
	return out, nil
}

// Pick shuffles questions and returns at most n of them.
func Pick(questions []Question, n int, rng *rand.Rand) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// rawQuestion covers every field shape the platform has been seen to emit.
type rawQuestion struct {
	ID            json.RawMessage `json:"id"`
	Ref           string          `json:"@id"`
	Text          string          `json:"text"`
	QuestionText  string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	OptionA       string          `json:"optionA"`
	OptionB       string          `json:"optionB"`
	OptionC       string          `json:"optionC"`
	OptionD       string          `json:"optionD"`
	CorrectOption string          `json:"correctOption"`
	Topic         json.RawMessage `json:"topic"`
	Exam          json.RawMessage `json:"exam"`
	Subject       json.RawMessage `json:"subject"`
}

// Normalize converts one raw question into the canonical form. The second
// return value is false when the question is unusable.
func Normalize(raw json.RawMessage) (Question, bool) {
	var rq rawQuestion
	if err := json.Unmarshal(raw, &rq); err != nil {
		return Question{}, false
	}

	text := strings.TrimSpace(rq.Text)
	if text == "" {
		text = strings.TrimSpace(rq.QuestionText)
	}
	if text == "" {
		return Question{}, false
	}

	opts := normalizeOptions(rq)
	if len(opts) < 2 {
		return Question{}, false
	}

	correct := resolveCorrect(rq.CorrectOption, opts)
	if correct == "" {
		return Question{}, false
	}

	return Question{
		ID:        questionID(rq),
		Text:      text,
		Options:   opts,
		Correct:   correct,
		Topic:     normalizeTopic(rq.Topic),
		ExamID:    api.RefID(rq.Exam),
		SubjectID: api.RefID(rq.Subject),
	}, true
}

// normalizeOptions flattens the three option shapes into an ordered slice.
func normalizeOptions(rq rawQuestion) []string {
	if len(rq.Options) > 0 {
		var arr []string
		if err := json.Unmarshal(rq.Options, &arr); err == nil {
			return compact(arr)
		}

		var keyed map[string]string
		if err := json.Unmarshal(rq.Options, &keyed); err == nil {
			// Letter keys carry the order: A, B, C, ...
			letters := make([]string, 0, len(keyed))
			for k := range keyed {
				letters = append(letters, k)
			}
			sort.Strings(letters)
			out := make([]string, 0, len(letters))
			for _, k := range letters {
				if v := strings.TrimSpace(keyed[k]); v != "" {
					out = append(out, v)
				}
			}
			return out
		}
		return nil
	}

	return compact([]string{rq.OptionA, rq.OptionB, rq.OptionC, rq.OptionD})
}

// resolveCorrect maps a stored correct answer onto an option. A single
// letter indexes into the options; anything else (including a letter past
// the last option) is kept verbatim.
func resolveCorrect(stored string, opts []string) string {
	stored = strings.TrimSpace(stored)
	if len(stored) == 1 {
		c := stored[0]
		if c >= 'A' && c <= 'F' {
			idx := int(c - 'A')
			if idx < len(opts) {
				return opts[idx]
			}
			return stored
		}
		if c >= 'a' && c <= 'f' {
			idx := int(c - 'a')
			if idx < len(opts) {
				return opts[idx]
			}
			return stored
		}
	}
	return stored
}

func normalizeTopic(raw json.RawMessage) Topic {
	if len(raw) == 0 {
		return Topic{Name: "Topic"}
	}

	var obj struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return Topic{ID: obj.ID, Name: obj.Name}
	}

	// An IRI or other string reference we can't resolve locally.
	return Topic{Name: "Topic"}
}

func questionID(rq rawQuestion) string {
	if len(rq.ID) > 0 {
		var n int
		if err := json.Unmarshal(rq.ID, &n); err == nil {
			return fmt.Sprintf("%d", n)
		}
		var s string
		if err := json.Unmarshal(rq.ID, &s); err == nil && s != "" {
			return s
		}
	}
	if id := api.RefID(json.RawMessage(fmt.Sprintf("%q", rq.Ref))); id != 0 {
		return fmt.Sprintf("%d", id)
	}
	return ""
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
