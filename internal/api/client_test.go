package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "test-token", UserID: "9"})
}

func TestBearerAuthHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"balance": 100}`))
	}))

	_, err := c.Finance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestListExamsBareArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"WAEC"},{"id":2,"name":"JAMB"}]`))
	}))

	exams, err := c.ListExams(context.Background())
	require.NoError(t, err)
	require.Len(t, exams, 2)
	assert.Equal(t, "WAEC", exams[0].Name)
}

func TestListExamsHydraEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hydra:member":[{"id":3,"name":"NECO"}],"hydra:totalItems":1}`))
	}))

	exams, err := c.ListExams(context.Background())
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, 3, exams[0].ID)
}

func TestListExamsMemberEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"member":[{"id":4,"name":"GCE"}]}`))
	}))

	exams, err := c.ListExams(context.Background())
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "GCE", exams[0].Name)
}

func TestRefID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"number", `7`, 7},
		{"iri string", `"/api/exams/42"`, 42},
		{"object with numeric id", `{"id": 5, "name": "WAEC"}`, 5},
		{"object with string id", `{"id": "12"}`, 12},
		{"object with @id only", `{"@id": "/api/subjects/33"}`, 33},
		{"non-iri string", `"biology"`, 0},
		{"empty object", `{}`, 0},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefID(json.RawMessage(tt.raw)))
		})
	}
}

func TestDeductBalanceEchoesBalance(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/me/deduct-balance", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(25), body["amount"])

		_, _ = w.Write([]byte(`{"balance": 75}`))
	}))

	res, err := c.DeductBalance(context.Background(), 25, "Practice Test Submission")
	require.NoError(t, err)
	require.NotNil(t, res.Balance)
	assert.Equal(t, 75, *res.Balance)
}

func TestDeductBalanceWithoutEcho(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}))

	res, err := c.DeductBalance(context.Background(), 15, "AI Check Answer")
	require.NoError(t, err)
	assert.Nil(t, res.Balance)
}

func TestDeductBalanceServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	}))

	_, err := c.DeductBalance(context.Background(), 25, "Practice Test Submission")
	require.Error(t, err)
}

func TestCreatePracticeTestIDShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"numeric id", `{"id": 101}`, "101"},
		{"string id", `{"id": "abc-1"}`, "abc-1"},
		{"@id only", `{"@id": "/api/practice_tests/55"}`, "55"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(tt.body))
			}))

			id, err := c.CreatePracticeTest(context.Background(), PracticeTestInput{
				UserIRI:    UserIRI("9"),
				ExamIRI:    ExamIRI(1),
				SubjectIRI: SubjectIRI(2),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSaveScoreUsesMergePatch(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))

	err := c.SaveScore(context.Background(), "101", 80, time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/practice_tests/101", gotPath)
	assert.Equal(t, "application/merge-patch+json", gotContentType)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login_check", r.URL.Path)
		_, _ = w.Write([]byte(`{"token": "jwt-abc"}`))
	}))
	t.Cleanup(srv.Close)

	token, err := Login(context.Background(), srv.URL, "a@b.ng", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}

func TestLoginEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	_, err := Login(context.Background(), srv.URL, "a@b.ng", "secret")
	require.Error(t, err)
}

func TestStatusErrorIsNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.Finance(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
