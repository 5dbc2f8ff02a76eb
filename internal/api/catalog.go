package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// Exam is a public examination body (WAEC, JAMB, NECO, ...).
type Exam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Subject belongs to an exam. Exam is kept raw because the platform may
// embed the exam, reference it by IRI, or send a bare id.
type Subject struct {
	ID   int             `json:"id"`
	Name string          `json:"name"`
	Exam json.RawMessage `json:"exam"`
}

// ListExams fetches all exams.
func (c *Client) ListExams(ctx context.Context) ([]Exam, error) {
	raw, err := c.do(ctx, "GET", "/api/exams", nil, "")
	if err != nil {
		return nil, err
	}
	items, err := members(raw)
	if err != nil {
		return nil, err
	}

	exams := make([]Exam, 0, len(items))
	for _, item := range items {
		var e Exam
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("decode exam: %w", err)
		}
		exams = append(exams, e)
	}
	return exams, nil
}

// ListSubjects fetches all subjects across exams. Filtering by exam is
// done client-side because the exam reference shape varies.
func (c *Client) ListSubjects(ctx context.Context) ([]Subject, error) {
	raw, err := c.do(ctx, "GET", "/api/subjects", nil, "")
	if err != nil {
		return nil, err
	}
	items, err := members(raw)
	if err != nil {
		return nil, err
	}

	subjects := make([]Subject, 0, len(items))
	for _, item := range items {
		var s Subject
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, fmt.Errorf("decode subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// ListQuestions fetches the full question collection as raw members.
// Normalization and exam/subject filtering live in the bank package;
// question payloads are too irregular to decode into a struct here.
func (c *Client) ListQuestions(ctx context.Context) ([]json.RawMessage, error) {
	raw, err := c.do(ctx, "GET", "/api/questions", nil, "")
	if err != nil {
		return nil, err
	}
	return members(raw)
}
