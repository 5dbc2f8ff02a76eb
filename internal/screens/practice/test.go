package practice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/assist"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/reconcile"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/store"
	"github.com/obinna/prepcli/internal/ui/components"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/wallet"
)

// panelKind selects which assist payload the side panel shows.
type panelKind int

const (
	panelNone panelKind = iota
	panelExplanation
	panelExample
)

// TestScreen runs one practice test from first question to submission.
type TestScreen struct {
	deps    *Deps
	exam    api.Exam
	subject api.Subject
	setup   session.Setup

	state    *session.State
	remoteID string
	cache    *assist.Cache
	options  components.OptionList

	now   time.Time
	panel panelKind

	// jumping routes digit keys into the jump-to-question input.
	jumping   bool
	jumpInput components.TextInput

	// busy is a short label while a charge or generation is in flight;
	// action keys are ignored until it clears.
	busy      string
	statusMsg string

	confirmSubmit bool
	confirmQuit   bool
	errMsg        string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// NewTest creates the active test screen. Questions load and the remote
// record is registered in Init.
func NewTest(deps *Deps, exam api.Exam, subject api.Subject, setup session.Setup) *TestScreen {
	return &TestScreen{
		deps:    deps,
		exam:    exam,
		subject: subject,
		setup:   setup,
		cache:   assist.NewCache(),
		now:     time.Now(),
	}
}

func (t *TestScreen) Init() tea.Cmd {
	return t.initTest()
}

func (t *TestScreen) Title() string {
	return t.subject.Name
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.confirmQuit || t.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if t.jumping {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if t.state == nil || t.state.Phase != session.PhaseActive {
		return nil
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "1-6", Description: "Answer"},
		{Key: "C", Description: "Check"},
		{Key: "E", Description: "Explain"},
		{Key: "X", Description: "Example"},
		{Key: "S", Description: "Submit"},
	}
}

// initTest loads the question pool, picks the test, and registers it with
// the platform. A failed registration aborts the test.
func (t *TestScreen) initTest() tea.Cmd {
	deps, exam, subject, setup := t.deps, t.exam, t.subject, t.setup
	return func() tea.Msg {
		ctx := context.Background()

		pool, err := deps.Loader.ForSubject(ctx, exam.ID, subject.ID)
		if err != nil {
			return testReadyMsg{Err: err}
		}
		if len(pool) == 0 {
			return testReadyMsg{Err: errors.New("no questions available for this subject")}
		}

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		picked := bank.Pick(pool, setup.QuestionCount, rng)
		duration := time.Duration(setup.DurationMinutes) * time.Minute

		now := time.Now()
		remoteID, err := deps.Client.CreatePracticeTest(ctx, api.PracticeTestInput{
			UserIRI:         api.UserIRI(deps.UserID),
			ExamIRI:         api.ExamIRI(exam.ID),
			SubjectIRI:      api.SubjectIRI(subject.ID),
			QuestionCount:   len(picked),
			DurationMinutes: setup.DurationMinutes,
			StartedAt:       now,
		})
		if err != nil {
			// The platform never learned about this test, so it must not
			// start; the student stays on the setup screen.
			return testReadyMsg{Err: fmt.Errorf("register test: %w", err)}
		}

		state := session.NewState(remoteID, picked, duration, now)
		state.ExamID = exam.ID
		state.ExamName = exam.Name
		state.SubjectID = subject.ID
		state.SubjectName = subject.Name

		_ = deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:     remoteID,
			Action:        "start",
			ExamName:      exam.Name,
			SubjectName:   subject.Name,
			QuestionCount: len(picked),
		})

		return testReadyMsg{State: state, RemoteID: remoteID}
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testReadyMsg:
		return t.handleReady(msg)
	case timerTickMsg:
		return t.handleTick(msg)
	case checkDoneMsg:
		return t.handleCheckDone(msg)
	case explanationMsg:
		return t.handleExplanation(msg)
	case exampleMsg:
		return t.handleExample(msg)
	case submitDeniedMsg:
		t.busy = ""
		t.statusMsg = msg.Err.Error()
		if t.state != nil {
			t.state.Phase = session.PhaseActive
		}
		return t, nil
	case submitDoneMsg:
		return t, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: NewResults(t.state, msg.Result, msg.Outcome),
			}
		}
	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TestScreen) handleReady(msg testReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		t.errMsg = msg.Err.Error()
		return t, nil
	}
	t.state = msg.State
	t.remoteID = msg.RemoteID
	t.options = components.NewOptionList(t.state.Question().Options)
	return t, tickCmd()
}

func (t *TestScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if t.state == nil {
		return t, nil
	}
	if t.state.Phase != session.PhaseActive {
		// A denied submit drops the test back to the active phase, so
		// the tick chain has to survive the submitting phase or the
		// countdown dies and expiry can never force a submission.
		if t.state.Phase == session.PhaseSubmitting {
			return t, tickCmd()
		}
		return t, nil
	}
	t.now = time.Time(msg)
	if t.state.Expired(t.now) {
		// Time is up. The test submits itself; the submit fee is waived
		// because the student never chose to submit.
		t.state.TimeExpired = true
		t.state.Phase = session.PhaseSubmitting
		return t, t.finishTest()
	}
	return t, tickCmd()
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.errMsg != "" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if t.state == nil || t.state.Phase != session.PhaseActive {
		return t, nil
	}

	if t.confirmQuit {
		switch key {
		case "y", "Y":
			t.abandon()
			return t, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			t.confirmQuit = false
		}
		return t, nil
	}

	if t.confirmSubmit {
		switch key {
		case "y", "Y":
			t.confirmSubmit = false
			t.busy = "Submitting..."
			t.state.Phase = session.PhaseSubmitting
			return t, t.submitWithCharge()
		case "n", "N", "esc":
			t.confirmSubmit = false
		}
		return t, nil
	}

	if t.jumping {
		return t.handleJumpKey(msg)
	}

	// Ignore action keys while a charge or generation is in flight.
	if t.busy != "" {
		return t, nil
	}

	switch key {
	case "esc":
		t.confirmQuit = true
		return t, nil
	case "left", "h", "p":
		t.moveTo(t.state.Current - 1)
		return t, nil
	case "right", "l", "n":
		t.moveTo(t.state.Current + 1)
		return t, nil
	case "tab":
		t.panel = panelNone
		return t, nil
	case "c":
		return t.checkAnswer()
	case "e":
		return t.showExplanation()
	case "x":
		return t.showExample(false)
	case "r":
		return t.showExample(true)
	case "s":
		t.confirmSubmit = true
		return t, nil
	case "g":
		t.jumping = true
		t.jumpInput = components.NewTextInput("question #", true, 3)
		t.statusMsg = ""
		return t, t.jumpInput.Init()
	}

	before := t.options.Chosen
	t.options, _ = t.options.Update(msg)
	if t.options.Chosen != before && t.options.Chosen >= 0 {
		t.state.SelectAnswer(t.options.Options[t.options.Chosen])
		t.statusMsg = ""
	}
	return t, nil
}

// handleJumpKey drives the jump-to-question input.
func (t *TestScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		t.jumping = false
		return t, nil
	case "enter":
		t.jumping = false
		n, err := t.jumpInput.NumericValue()
		if err != nil || n < 1 || n > len(t.state.Questions) {
			t.statusMsg = "No such question."
			return t, nil
		}
		t.moveTo(n - 1)
		return t, nil
	}
	var cmd tea.Cmd
	t.jumpInput, cmd = t.jumpInput.Update(msg)
	return t, cmd
}

// moveTo changes the current question and rebuilds the option list,
// restoring any prior answer and check feedback for that question.
func (t *TestScreen) moveTo(idx int) {
	t.state.Jump(idx)
	q := t.state.Question()
	t.options = components.NewOptionList(q.Options)
	if answer := t.state.Answers[t.state.Current]; answer != "" {
		for i, opt := range q.Options {
			if opt == answer {
				t.options.Cursor = i
				t.options.Chosen = i
				break
			}
		}
		if t.state.Checked[t.state.Current] {
			t.options = t.options.SetFeedback(session.Matches(answer, q.Correct))
		}
	}
	t.panel = panelNone
	t.statusMsg = ""
}

// checkAnswer runs the paid at-most-once answer check for the current
// question.
func (t *TestScreen) checkAnswer() (screen.Screen, tea.Cmd) {
	if !t.state.CanCheck() {
		if t.state.Answers[t.state.Current] == "" {
			t.statusMsg = "Select an answer before checking."
		} else {
			t.statusMsg = "Already checked. Change your answer to check again."
		}
		return t, nil
	}

	t.busy = "Checking..."
	deps := t.deps
	idx := t.state.Current
	return t, func() tea.Msg {
		charge, err := deps.Ledger.Authorize(context.Background(), pricing.ActionCheck, "Check answer")
		return checkDoneMsg{Index: idx, Charge: charge, Err: err}
	}
}

func (t *TestScreen) handleCheckDone(msg checkDoneMsg) (screen.Screen, tea.Cmd) {
	t.busy = ""
	if msg.Err != nil {
		t.statusMsg = msg.Err.Error()
		return t, nil
	}
	if t.state == nil || msg.Index != t.state.Current {
		return t, nil
	}

	correct := t.state.MarkChecked()
	t.options = t.options.SetFeedback(correct)
	t.recordAssist("check-answer", false)

	if correct {
		t.statusMsg = chargeNote("Correct!", msg.Charge)
		return t, nil
	}

	// A wrong check pulls in the explanation automatically, charged only
	// when it is not already cached.
	t.statusMsg = chargeNote("Not quite.", msg.Charge)
	if t.deps.Assist == nil {
		return t, nil
	}
	return t.showExplanation()
}

// showExplanation displays the explanation for the current question,
// cache-first. A cache miss is a fresh paid generation.
func (t *TestScreen) showExplanation() (screen.Screen, tea.Cmd) {
	idx := t.state.Current
	if _, ok := t.cache.Explanation(idx); ok {
		t.panel = panelExplanation
		return t, nil
	}
	// Refuse before authorizing: charging for an explanation no provider
	// can generate would take the money and deliver nothing.
	if t.deps.Assist == nil {
		t.statusMsg = "Explanations need an AI provider. Set an API key and restart."
		return t, nil
	}

	t.busy = "Explaining..."
	deps, cache := t.deps, t.cache
	q := t.state.Question()
	answer := t.state.Answers[idx]
	return t, func() tea.Msg {
		ctx := context.Background()
		if _, err := deps.Ledger.Authorize(ctx, pricing.ActionExplanation, "Explanation"); err != nil {
			return explanationMsg{Index: idx, Err: err}
		}

		exp, genErr := deps.Assist.Explain(ctx, q, answer)
		if genErr != nil {
			// The charge stands. The fallback is cached so the student
			// keeps what they paid for; there is no refund path.
			exp = assist.FallbackExplanation(q)
		}
		cache.PutExplanation(idx, exp)
		return explanationMsg{Index: idx, Explanation: exp}
	}
}

func (t *TestScreen) handleExplanation(msg explanationMsg) (screen.Screen, tea.Cmd) {
	t.busy = ""
	if msg.Err != nil {
		t.statusMsg = msg.Err.Error()
		return t, nil
	}
	t.recordAssist("explanation", msg.Explanation.Fallback)
	if t.state != nil && msg.Index == t.state.Current {
		t.panel = panelExplanation
	}
	return t, nil
}

// showExample displays a worked example, cache-first. regen clears the
// cached payload before generating; if that generation fails the slot
// stays empty.
func (t *TestScreen) showExample(regen bool) (screen.Screen, tea.Cmd) {
	idx := t.state.Current
	if !regen {
		if _, ok := t.cache.Example(idx); ok {
			t.panel = panelExample
			return t, nil
		}
	}
	if regen {
		if _, ok := t.cache.Example(idx); !ok {
			// Nothing to regenerate; treat as a first request.
			regen = false
		}
	}
	if t.deps.Assist == nil {
		t.statusMsg = "Worked examples need an AI provider. Set an API key and restart."
		return t, nil
	}

	t.busy = "Working an example..."
	deps, cache := t.deps, t.cache
	q := t.state.Question()
	return t, func() tea.Msg {
		ctx := context.Background()
		if _, err := deps.Ledger.Authorize(ctx, pricing.ActionExample, "Worked example"); err != nil {
			return exampleMsg{Index: idx, Err: err}
		}

		if regen {
			cache.ClearExample(idx)
		}

		ex, genErr := deps.Assist.MakeExample(ctx, q)
		if genErr != nil {
			if regen {
				// The old payload is already gone; the slot stays empty.
				return exampleMsg{Index: idx, Empty: true}
			}
			ex = assist.FallbackExample(q)
		}
		cache.PutExample(idx, ex)
		return exampleMsg{Index: idx, Example: ex}
	}
}

func (t *TestScreen) handleExample(msg exampleMsg) (screen.Screen, tea.Cmd) {
	t.busy = ""
	if msg.Err != nil {
		t.statusMsg = msg.Err.Error()
		return t, nil
	}
	if msg.Empty {
		t.statusMsg = "Could not generate a fresh example."
		t.recordAssist("example", true)
		return t, nil
	}
	t.recordAssist("example", msg.Example.Fallback)
	if t.state != nil && msg.Index == t.state.Current {
		t.panel = panelExample
	}
	return t, nil
}

// submitWithCharge authorizes the submit fee and then finishes the test.
// A refused charge returns the student to the active test.
func (t *TestScreen) submitWithCharge() tea.Cmd {
	deps := t.deps
	finish := t.finishTest()
	return func() tea.Msg {
		_, err := deps.Ledger.Authorize(context.Background(), pricing.ActionSubmit, "Submit test")
		if err != nil {
			return submitDeniedMsg{Err: err}
		}
		return finish()
	}
}

// finishTest scores the test, records the finish event, and reconciles
// with the platform. The local result is final before any upload starts.
func (t *TestScreen) finishTest() tea.Cmd {
	deps := t.deps
	state := t.state
	remoteID := t.remoteID
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()
		result := state.Score(now)

		_ = deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:     state.SessionID,
			Action:        "finish",
			ExamName:      state.ExamName,
			SubjectName:   state.SubjectName,
			QuestionCount: result.Total,
			Correct:       result.Correct,
			Score:         result.Score,
			DurationSecs:  int(result.Duration.Seconds()),
		})

		rec := reconcile.New(deps.Client, deps.Events)
		outcome := rec.Run(ctx, reconcile.Input{
			TestID:      remoteID,
			Score:       result.Score,
			CompletedAt: now,
			Items:       submissionItems(result),
		})

		return submitDoneMsg{Result: result, Outcome: outcome}
	}
}

// submissionItems reports every question in the session, blanks included:
// an unanswered question goes up with an empty answer, marked incorrect,
// so the system of record sees the full test.
func submissionItems(result session.Result) []reconcile.Item {
	items := make([]reconcile.Item, len(result.Questions))
	for i, qr := range result.Questions {
		items[i] = reconcile.Item{
			QuestionID: qr.QuestionID,
			Answer:     qr.Answer,
			Correct:    qr.Correct,
		}
	}
	return items
}

// abandon records the walk-away. Nothing is scored or uploaded.
func (t *TestScreen) abandon() {
	if t.state == nil {
		return
	}
	_ = t.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    t.state.SessionID,
		Action:       "abandon",
		ExamName:     t.state.ExamName,
		SubjectName:  t.state.SubjectName,
		DurationSecs: int(t.state.Elapsed(time.Now()).Seconds()),
	})
}

func (t *TestScreen) recordAssist(track string, fallback bool) {
	if t.state == nil {
		return
	}
	idx := t.state.Current
	_ = t.deps.Events.AppendAssistEvent(context.Background(), store.AssistEventData{
		SessionID:     t.state.SessionID,
		Track:         track,
		QuestionIndex: idx,
		QuestionID:    t.state.Questions[idx].ID,
		Fallback:      fallback,
	})
}

func chargeNote(prefix string, charge wallet.Charge) string {
	if charge.Free {
		return prefix + " (free action used)"
	}
	return prefix + " (" + pricing.Naira(charge.Amount) + " charged)"
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return timerTickMsg(ts)
	})
}
