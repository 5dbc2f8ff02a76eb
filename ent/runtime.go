// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/obinna/prepcli/ent/assistevent"
	"github.com/obinna/prepcli/ent/chargeevent"
	"github.com/obinna/prepcli/ent/llmrequestevent"
	"github.com/obinna/prepcli/ent/quota"
	"github.com/obinna/prepcli/ent/schema"
	"github.com/obinna/prepcli/ent/sessionevent"
	"github.com/obinna/prepcli/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assisteventMixin := schema.AssistEvent{}.Mixin()
	assisteventMixinFields0 := assisteventMixin[0].Fields()
	_ = assisteventMixinFields0
	assisteventFields := schema.AssistEvent{}.Fields()
	_ = assisteventFields
	// assisteventDescTimestamp is the schema descriptor for timestamp field.
	assisteventDescTimestamp := assisteventMixinFields0[1].Descriptor()
	// assistevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assistevent.DefaultTimestamp = assisteventDescTimestamp.Default.(func() time.Time)
	// assisteventDescSessionID is the schema descriptor for session_id field.
	assisteventDescSessionID := assisteventFields[0].Descriptor()
	// assistevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assistevent.SessionIDValidator = assisteventDescSessionID.Validators[0].(func(string) error)
	// assisteventDescTrack is the schema descriptor for track field.
	assisteventDescTrack := assisteventFields[1].Descriptor()
	// assistevent.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	assistevent.TrackValidator = assisteventDescTrack.Validators[0].(func(string) error)
	// assisteventDescQuestionID is the schema descriptor for question_id field.
	assisteventDescQuestionID := assisteventFields[3].Descriptor()
	// assistevent.DefaultQuestionID holds the default value on creation for the question_id field.
	assistevent.DefaultQuestionID = assisteventDescQuestionID.Default.(string)
	// assisteventDescFallback is the schema descriptor for fallback field.
	assisteventDescFallback := assisteventFields[4].Descriptor()
	// assistevent.DefaultFallback holds the default value on creation for the fallback field.
	assistevent.DefaultFallback = assisteventDescFallback.Default.(bool)
	chargeeventMixin := schema.ChargeEvent{}.Mixin()
	chargeeventMixinFields0 := chargeeventMixin[0].Fields()
	_ = chargeeventMixinFields0
	chargeeventFields := schema.ChargeEvent{}.Fields()
	_ = chargeeventFields
	// chargeeventDescTimestamp is the schema descriptor for timestamp field.
	chargeeventDescTimestamp := chargeeventMixinFields0[1].Descriptor()
	// chargeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chargeevent.DefaultTimestamp = chargeeventDescTimestamp.Default.(func() time.Time)
	// chargeeventDescUserID is the schema descriptor for user_id field.
	chargeeventDescUserID := chargeeventFields[0].Descriptor()
	// chargeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	chargeevent.UserIDValidator = chargeeventDescUserID.Validators[0].(func(string) error)
	// chargeeventDescAction is the schema descriptor for action field.
	chargeeventDescAction := chargeeventFields[1].Descriptor()
	// chargeevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	chargeevent.ActionValidator = chargeeventDescAction.Validators[0].(func(string) error)
	// chargeeventDescDescription is the schema descriptor for description field.
	chargeeventDescDescription := chargeeventFields[2].Descriptor()
	// chargeevent.DefaultDescription holds the default value on creation for the description field.
	chargeevent.DefaultDescription = chargeeventDescDescription.Default.(string)
	// chargeeventDescOutcome is the schema descriptor for outcome field.
	chargeeventDescOutcome := chargeeventFields[4].Descriptor()
	// chargeevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	chargeevent.OutcomeValidator = chargeeventDescOutcome.Validators[0].(func(string) error)
	// chargeeventDescReason is the schema descriptor for reason field.
	chargeeventDescReason := chargeeventFields[5].Descriptor()
	// chargeevent.DefaultReason holds the default value on creation for the reason field.
	chargeevent.DefaultReason = chargeeventDescReason.Default.(string)
	// chargeeventDescBalanceAfter is the schema descriptor for balance_after field.
	chargeeventDescBalanceAfter := chargeeventFields[6].Descriptor()
	// chargeevent.DefaultBalanceAfter holds the default value on creation for the balance_after field.
	chargeevent.DefaultBalanceAfter = chargeeventDescBalanceAfter.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRequestID is the schema descriptor for request_id field.
	llmrequesteventDescRequestID := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultRequestID holds the default value on creation for the request_id field.
	llmrequestevent.DefaultRequestID = llmrequesteventDescRequestID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quotaFields := schema.Quota{}.Fields()
	_ = quotaFields
	// quotaDescUserID is the schema descriptor for user_id field.
	quotaDescUserID := quotaFields[0].Descriptor()
	// quota.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quota.UserIDValidator = quotaDescUserID.Validators[0].(func(string) error)
	// quotaDescFreeUsed is the schema descriptor for free_used field.
	quotaDescFreeUsed := quotaFields[1].Descriptor()
	// quota.DefaultFreeUsed holds the default value on creation for the free_used field.
	quota.DefaultFreeUsed = quotaDescFreeUsed.Default.(int)
	// quota.FreeUsedValidator is a validator for the "free_used" field. It is called by the builders before save.
	quota.FreeUsedValidator = quotaDescFreeUsed.Validators[0].(func(int) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescExamName is the schema descriptor for exam_name field.
	sessioneventDescExamName := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultExamName holds the default value on creation for the exam_name field.
	sessionevent.DefaultExamName = sessioneventDescExamName.Default.(string)
	// sessioneventDescSubjectName is the schema descriptor for subject_name field.
	sessioneventDescSubjectName := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSubjectName holds the default value on creation for the subject_name field.
	sessionevent.DefaultSubjectName = sessioneventDescSubjectName.Default.(string)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescSubmissionsSent is the schema descriptor for submissions_sent field.
	submissioneventDescSubmissionsSent := submissioneventFields[2].Descriptor()
	// submissionevent.DefaultSubmissionsSent holds the default value on creation for the submissions_sent field.
	submissionevent.DefaultSubmissionsSent = submissioneventDescSubmissionsSent.Default.(int)
	// submissioneventDescSubmissionsTotal is the schema descriptor for submissions_total field.
	submissioneventDescSubmissionsTotal := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultSubmissionsTotal holds the default value on creation for the submissions_total field.
	submissionevent.DefaultSubmissionsTotal = submissioneventDescSubmissionsTotal.Default.(int)
}
