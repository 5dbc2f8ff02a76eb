package bank

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/obinna/prepcli/internal/api"
)

func TestNormalizeOptionShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "array options",
			raw:  `{"id":1,"text":"Q?","options":["2","4","6"],"correctOption":"B"}`,
			want: []string{"2", "4", "6"},
		},
		{
			name: "letter-keyed map",
			raw:  `{"id":2,"text":"Q?","options":{"B":"four","A":"two","C":"six"},"correctOption":"A"}`,
			want: []string{"two", "four", "six"},
		},
		{
			name: "flat optionA..optionD",
			raw:  `{"id":3,"text":"Q?","optionA":"red","optionB":"blue","optionC":"green","correctOption":"C"}`,
			want: []string{"red", "blue", "green"},
		},
		{
			name: "blank entries dropped",
			raw:  `{"id":4,"text":"Q?","options":["yes"," ","no"],"correctOption":"A"}`,
			want: []string{"yes", "no"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Normalize(json.RawMessage(tt.raw))
			if !ok {
				t.Fatal("expected usable question")
			}
			if len(q.Options) != len(tt.want) {
				t.Fatalf("options = %v, want %v", q.Options, tt.want)
			}
			for i := range tt.want {
				if q.Options[i] != tt.want[i] {
					t.Errorf("options[%d] = %q, want %q", i, q.Options[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveCorrect(t *testing.T) {
	opts := []string{"two", "four", "six"}

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"uppercase letter", "B", "four"},
		{"lowercase letter", "c", "six"},
		{"letter past last option", "F", "F"},
		{"verbatim text", "four", "four"},
		{"padded letter", " A ", "two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCorrect(tt.stored, opts); got != tt.want {
				t.Errorf("resolveCorrect(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}

func TestNormalizeRejectsUnusable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no text", `{"id":1,"options":["a","b"],"correctOption":"A"}`},
		{"one option", `{"id":2,"text":"Q?","options":["a"],"correctOption":"A"}`},
		{"no correct answer", `{"id":3,"text":"Q?","options":["a","b"]}`},
		{"not an object", `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Normalize(json.RawMessage(tt.raw)); ok {
				t.Error("expected question to be rejected")
			}
		})
	}
}

func TestNormalizeRefsAndTopic(t *testing.T) {
	raw := `{
		"id": 7,
		"text": "What is inertia?",
		"options": ["a","b","c","d"],
		"correctOption": "A",
		"exam": "/api/exams/3",
		"subject": {"id": 12, "name": "Physics"},
		"topic": "/api/topics/5"
	}`
	q, ok := Normalize(json.RawMessage(raw))
	if !ok {
		t.Fatal("expected usable question")
	}
	if q.ExamID != 3 {
		t.Errorf("exam id = %d, want 3", q.ExamID)
	}
	if q.SubjectID != 12 {
		t.Errorf("subject id = %d, want 12", q.SubjectID)
	}
	// String topic refs can't be resolved locally; a placeholder stands in.
	if q.Topic.Name != "Topic" {
		t.Errorf("topic = %q, want placeholder", q.Topic.Name)
	}
}

func TestNormalizeEmbeddedTopic(t *testing.T) {
	raw := `{"id":8,"text":"Q?","options":["a","b"],"correctOption":"A","topic":{"id":4,"name":"Mechanics"}}`
	q, ok := Normalize(json.RawMessage(raw))
	if !ok {
		t.Fatal("expected usable question")
	}
	if q.Topic.Name != "Mechanics" || q.Topic.ID != 4 {
		t.Errorf("topic = %+v", q.Topic)
	}
}

type fakeCatalog struct {
	subjects []api.Subject
	items    []json.RawMessage
}

func (f *fakeCatalog) ListSubjects(ctx context.Context) ([]api.Subject, error) {
	return f.subjects, nil
}

func (f *fakeCatalog) ListQuestions(ctx context.Context) ([]json.RawMessage, error) {
	return f.items, nil
}

func TestForSubjectFilters(t *testing.T) {
	catalog := &fakeCatalog{items: []json.RawMessage{
		json.RawMessage(`{"id":1,"text":"Q1","options":["a","b"],"correctOption":"A","exam":1,"subject":2}`),
		json.RawMessage(`{"id":2,"text":"Q2","options":["a","b"],"correctOption":"A","exam":1,"subject":3}`),
		json.RawMessage(`{"id":3,"text":"Q3","options":["a","b"],"correctOption":"A","exam":"/api/exams/1","subject":"/api/subjects/2"}`),
		json.RawMessage(`{"id":4,"options":["a","b"],"correctOption":"A","exam":1,"subject":2}`),
	}}

	l := NewLoader(catalog)
	got, err := l.ForSubject(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("for subject: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (wrong subject and malformed dropped)", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("ids = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSubjectsWithQuestions(t *testing.T) {
	catalog := &fakeCatalog{
		subjects: []api.Subject{
			{ID: 2, Name: "Physics", Exam: json.RawMessage(`1`)},
			{ID: 3, Name: "Biology", Exam: json.RawMessage(`"/api/exams/1"`)},
			{ID: 4, Name: "Empty", Exam: json.RawMessage(`1`)},
			{ID: 5, Name: "Other exam", Exam: json.RawMessage(`2`)},
		},
		items: []json.RawMessage{
			json.RawMessage(`{"id":1,"text":"Q1","options":["a","b"],"correctOption":"A","exam":1,"subject":2}`),
			json.RawMessage(`{"id":2,"text":"Q2","options":["a","b"],"correctOption":"A","exam":1,"subject":2}`),
			json.RawMessage(`{"id":3,"text":"Q3","options":["a","b"],"correctOption":"A","exam":1,"subject":3}`),
			json.RawMessage(`{"id":4,"text":"Q4","options":["a","b"],"correctOption":"A","exam":2,"subject":5}`),
		},
	}

	l := NewLoader(catalog)
	got, err := l.SubjectsWithQuestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (empty subject and other exam excluded)", len(got))
	}
	if got[0].Subject.Name != "Physics" || got[0].Count != 2 {
		t.Errorf("first = %s/%d, want Physics/2", got[0].Subject.Name, got[0].Count)
	}
	if got[1].Subject.Name != "Biology" || got[1].Count != 1 {
		t.Errorf("second = %s/%d, want Biology/1", got[1].Subject.Name, got[1].Count)
	}
}

func TestPick(t *testing.T) {
	var questions []Question
	for i := 0; i < 10; i++ {
		questions = append(questions, Question{ID: string(rune('a' + i))})
	}

	rng := rand.New(rand.NewPCG(1, 2))
	picked := Pick(questions, 4, rng)
	if len(picked) != 4 {
		t.Fatalf("len = %d, want 4", len(picked))
	}

	// No duplicates.
	seen := map[string]bool{}
	for _, q := range picked {
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}

	// Source slice untouched.
	if questions[0].ID != "a" {
		t.Error("source slice was mutated")
	}

	// Asking for more than available returns everything.
	all := Pick(questions, 50, rng)
	if len(all) != 10 {
		t.Errorf("len = %d, want 10", len(all))
	}
}
