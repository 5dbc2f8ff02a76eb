package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/assist"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/llm"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/store"
	"github.com/obinna/prepcli/internal/wallet"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	assistEvents  []store.AssistEventData
}

func (m *mockEventRepo) AppendCharge(_ context.Context, _ store.ChargeEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAssistEvent(_ context.Context, data store.AssistEventData) error {
	m.assistEvents = append(m.assistEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSubmissionEvent(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) Spend(_ context.Context, _ string) (store.SpendSummary, error) {
	return store.SpendSummary{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []bank.Question {
	return []bank.Question{
		{ID: "1", Text: "2+2?", Options: []string{"3", "4", "5"}, Correct: "4"},
		{ID: "2", Text: "Capital of Nigeria?", Options: []string{"Lagos", "Abuja"}, Correct: "Abuja"},
		{ID: "3", Text: "H2O is?", Options: []string{"Water", "Salt"}, Correct: "Water"},
	}
}

// newReadyTest builds a TestScreen already past registration.
func newReadyTest(t *testing.T, events *mockEventRepo, duration time.Duration) *TestScreen {
	t.Helper()
	deps := &Deps{
		Events: events,
		Prices: pricing.Default(),
		UserID: "7",
		Assist: assist.NewService(llm.NewMockProvider(), assist.DefaultConfig()),
	}
	return newReadyTestWith(t, deps, duration)
}

func newReadyTestWith(t *testing.T, deps *Deps, duration time.Duration) *TestScreen {
	t.Helper()
	exam := api.Exam{ID: 1, Name: "WAEC"}
	subject := api.Subject{ID: 4, Name: "Mathematics"}
	ts := NewTest(deps, exam, subject, session.Setup{QuestionCount: 3, DurationMinutes: 30})

	state := session.NewState("pt-1", testQuestions(), duration, time.Now())
	state.ExamName = "WAEC"
	state.SubjectName = "Mathematics"

	scr, _ := ts.Update(testReadyMsg{State: state, RemoteID: "pt-1"})
	got, ok := scr.(*TestScreen)
	if !ok {
		t.Fatalf("Update returned %T, want *TestScreen", scr)
	}
	return got
}

func TestAnswerSelectionWritesAnswerMap(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)

	ts.Update(keyPress('2'))

	if got := ts.state.Answers[0]; got != "4" {
		t.Errorf("answer = %q, want %q", got, "4")
	}
}

func TestCheckRequiresAnswer(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)

	_, cmd := ts.Update(keyPress('c'))

	if cmd != nil {
		t.Error("check without an answer should not authorize")
	}
	if ts.statusMsg != "Select an answer before checking." {
		t.Errorf("statusMsg = %q", ts.statusMsg)
	}
}

func TestCheckWithAnswerStartsAuthorization(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)
	ts.Update(keyPress('2'))

	_, cmd := ts.Update(keyPress('c'))

	if cmd == nil {
		t.Fatal("expected an authorization command")
	}
	if ts.busy == "" {
		t.Error("busy flag should block further action keys")
	}
}

func TestWrongCheckPullsInExplanation(t *testing.T) {
	events := &mockEventRepo{}
	ts := newReadyTest(t, events, 30*time.Minute)
	ts.Update(keyPress('1')) // "3", wrong

	_, cmd := ts.Update(checkDoneMsg{Index: 0, Charge: wallet.Charge{Free: true}})

	if !ts.state.Checked[0] {
		t.Error("question should be marked checked")
	}
	if cmd == nil {
		t.Error("a wrong check should start the explanation fetch")
	}
	if ts.busy != "Explaining..." {
		t.Errorf("busy = %q", ts.busy)
	}
	if len(events.assistEvents) != 1 || events.assistEvents[0].Track != "check-answer" {
		t.Errorf("assist events = %+v", events.assistEvents)
	}
}

func TestCorrectCheckStopsThere(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)
	ts.Update(keyPress('2')) // "4", correct

	_, cmd := ts.Update(checkDoneMsg{Index: 0, Charge: wallet.Charge{Amount: 15}})

	if cmd != nil {
		t.Error("a correct check should not fetch anything")
	}
	if !ts.options.Correct {
		t.Error("feedback should show the answer as correct")
	}
}

func TestTimerExpiryForcesSubmission(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, time.Second)

	_, cmd := ts.Update(timerTickMsg(time.Now().Add(2 * time.Second)))

	if !ts.state.TimeExpired {
		t.Error("TimeExpired should be set")
	}
	if ts.state.Phase != session.PhaseSubmitting {
		t.Errorf("phase = %v, want submitting", ts.state.Phase)
	}
	if cmd == nil {
		t.Error("expiry should produce the submission command")
	}
}

func TestSubmitDenialReturnsToActiveTest(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)
	ts.Update(keyPress('s'))
	if !ts.confirmSubmit {
		t.Fatal("expected submit confirmation")
	}
	ts.Update(keyPress('y'))
	if ts.state.Phase != session.PhaseSubmitting {
		t.Fatal("expected submitting phase")
	}

	// A tick landing while the charge is in flight must keep the chain
	// alive; the denial below needs a running countdown to return to.
	_, cmd := ts.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick chain died during the submitting phase")
	}

	ts.Update(submitDeniedMsg{Err: wallet.ErrInsufficientBalance})

	if ts.state.Phase != session.PhaseActive {
		t.Errorf("phase = %v, want active again", ts.state.Phase)
	}
	if ts.busy != "" {
		t.Error("busy flag should be cleared")
	}

	// The countdown still runs after the denial, so expiry can still
	// force a submission the student could not afford to trigger.
	_, cmd = ts.Update(timerTickMsg(time.Now().Add(31 * time.Minute)))
	if !ts.state.TimeExpired || ts.state.Phase != session.PhaseSubmitting {
		t.Errorf("expiry after denial: expired=%v phase=%v, want forced submission",
			ts.state.TimeExpired, ts.state.Phase)
	}
	if cmd == nil {
		t.Error("forced submission should produce the submission command")
	}
}

func TestExplainRefusedWithoutProvider(t *testing.T) {
	events := &mockEventRepo{}
	deps := &Deps{Events: events, Prices: pricing.Default(), UserID: "7"}
	ts := newReadyTestWith(t, deps, 30*time.Minute)

	_, cmd := ts.Update(keyPress('e'))

	if cmd != nil {
		t.Error("explanation without a provider must not authorize a charge")
	}
	if ts.busy != "" {
		t.Errorf("busy = %q, want idle", ts.busy)
	}
	if ts.statusMsg == "" {
		t.Error("the refusal should tell the student why")
	}

	_, cmd = ts.Update(keyPress('x'))
	if cmd != nil {
		t.Error("example without a provider must not authorize a charge")
	}
}

func TestWrongCheckWithoutProviderKeepsFeedback(t *testing.T) {
	events := &mockEventRepo{}
	deps := &Deps{Events: events, Prices: pricing.Default(), UserID: "7"}
	ts := newReadyTestWith(t, deps, 30*time.Minute)
	ts.Update(keyPress('1')) // "3", wrong

	_, cmd := ts.Update(checkDoneMsg{Index: 0, Charge: wallet.Charge{Free: true}})

	if cmd != nil {
		t.Error("no provider means no auto-explanation fetch")
	}
	if !ts.state.Checked[0] || ts.options.Correct {
		t.Error("the check verdict itself should still land")
	}
	if ts.statusMsg == "" {
		t.Error("the student should still see the check feedback")
	}
}

func TestSubmissionCoversEveryQuestion(t *testing.T) {
	state := session.NewState("pt-1", testQuestions(), 30*time.Minute, time.Now())
	state.SelectAnswer("4") // question 1 answered, 2 and 3 left blank

	items := submissionItems(state.Score(time.Now()))

	if len(items) != 3 {
		t.Fatalf("items = %d, want one per question", len(items))
	}
	if items[0].Answer != "4" || !items[0].Correct {
		t.Errorf("answered item = %+v", items[0])
	}
	for _, it := range items[1:] {
		if it.Answer != "" || it.Correct {
			t.Errorf("blank item = %+v, want empty answer marked incorrect", it)
		}
	}
}

func TestAbandonRecordsEventAndUnwinds(t *testing.T) {
	events := &mockEventRepo{}
	ts := newReadyTest(t, events, 30*time.Minute)

	ts.Update(specialKey(tea.KeyEscape))
	if !ts.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	_, cmd := ts.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("abandon should unwind to the home screen")
	}

	var abandoned bool
	for _, ev := range events.sessionEvents {
		if ev.Action == "abandon" {
			abandoned = true
		}
	}
	if !abandoned {
		t.Errorf("session events = %+v, want an abandon event", events.sessionEvents)
	}
}

func TestJumpToQuestion(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)

	ts.Update(keyPress('g'))
	if !ts.jumping {
		t.Fatal("expected jump mode")
	}
	ts.Update(keyPress('3'))
	ts.Update(specialKey(tea.KeyEnter))

	if ts.jumping {
		t.Error("jump mode should end on enter")
	}
	if ts.state.Current != 2 {
		t.Errorf("current = %d, want 2", ts.state.Current)
	}
}

func TestNavigationRestoresAnswerAndFeedback(t *testing.T) {
	ts := newReadyTest(t, &mockEventRepo{}, 30*time.Minute)
	ts.Update(keyPress('2'))
	ts.Update(checkDoneMsg{Index: 0, Charge: wallet.Charge{Free: true}})

	ts.Update(keyPress('n')) // forward
	if ts.options.Chosen != -1 {
		t.Error("second question should start unanswered")
	}

	ts.Update(keyPress('p')) // back
	if ts.options.Chosen != 1 {
		t.Errorf("chosen = %d, want restored answer", ts.options.Chosen)
	}
	if !ts.options.Checked || !ts.options.Correct {
		t.Error("check feedback should be restored")
	}
}
