package practice

import (
	"time"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/assist"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/reconcile"
	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/wallet"
)

// examsLoadedMsg is sent when the exam catalog has been fetched.
type examsLoadedMsg struct {
	Exams []api.Exam
	Err   error
}

// subjectsLoadedMsg is sent when the subject catalog has been fetched and
// counted. Subjects without questions are already excluded.
type subjectsLoadedMsg struct {
	Subjects []bank.SubjectCount
	Err      error
}

// testReadyMsg is sent when questions are loaded and the remote record is
// created. A failed registration aborts the test instead.
type testReadyMsg struct {
	State    *session.State
	RemoteID string
	Err      error
}

// timerTickMsg drives the countdown, once per second.
type timerTickMsg time.Time

// checkDoneMsg is sent after a paid answer check was authorized.
type checkDoneMsg struct {
	Index  int
	Charge wallet.Charge
	Err    error
}

// explanationMsg carries a generated (or cached, or fallback) explanation.
// Err is set only when the charge was refused; generation failures arrive
// as fallback payloads instead.
type explanationMsg struct {
	Index       int
	Explanation assist.Explanation
	Cached      bool
	Err         error
}

// exampleMsg carries a worked example. Empty is true when a regeneration
// failed and left the slot blank.
type exampleMsg struct {
	Index   int
	Example assist.Example
	Cached  bool
	Empty   bool
	Err     error
}

// submitDoneMsg is sent when scoring and reconciliation have finished.
type submitDoneMsg struct {
	Result  session.Result
	Outcome reconcile.Outcome
}

// submitDeniedMsg is sent when the submit charge was refused.
type submitDeniedMsg struct {
	Err error
}
