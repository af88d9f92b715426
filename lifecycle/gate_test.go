package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawdesk/legal-practice-api/lifecycle"
)

func TestEvaluateBlockers_ForwardBlockedByIncompleteTask(t *testing.T) {
	tasks := []lifecycle.Task{
		{ID: "t1", CaseID: "case-1", Stage: lifecycle.StageAdjudication, Title: "File reply", Status: "Pending"},
		{ID: "t2", CaseID: "case-1", Stage: lifecycle.StageAdjudication, Title: "Collect evidence", Status: "Completed"},
		{ID: "t3", CaseID: "case-1", Stage: lifecycle.StageAssessment, Title: "Old stage task", Status: "Pending"},
		{ID: "t4", CaseID: "case-2", Stage: lifecycle.StageAdjudication, Title: "Other case", Status: "Pending"},
	}

	res := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionForward, tasks, nil)

	assert.True(t, res.Blocked)
	assert.Len(t, res.IncompleteTasks, 1)
	assert.Equal(t, "t1", res.IncompleteTasks[0].ID)
	assert.Empty(t, res.PendingHearings)
}

func TestEvaluateBlockers_ForwardBlockedByScheduledHearing(t *testing.T) {
	hearings := []lifecycle.Hearing{
		{ID: "h1", CaseID: "case-1", Status: "scheduled"},
		{ID: "h2", CaseID: "case-1", Status: "completed"},
		{ID: "h3", CaseID: "case-2", Status: "scheduled"},
	}

	res := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionForward, nil, hearings)

	assert.True(t, res.Blocked)
	assert.Empty(t, res.IncompleteTasks)
	assert.Len(t, res.PendingHearings, 1)
	assert.Equal(t, "h1", res.PendingHearings[0].ID)
}

func TestEvaluateBlockers_SendBackAndRemandNeverBlock(t *testing.T) {
	tasks := []lifecycle.Task{
		{ID: "t1", CaseID: "case-1", Stage: lifecycle.StageAdjudication, Status: "Pending"},
	}
	hearings := []lifecycle.Hearing{
		{ID: "h1", CaseID: "case-1", Status: "scheduled"},
	}

	sendBack := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionSendBack, tasks, hearings)
	remand := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionRemand, tasks, hearings)

	assert.False(t, sendBack.Blocked)
	assert.False(t, remand.Blocked)
	assert.Empty(t, sendBack.IncompleteTasks)
	assert.Empty(t, remand.PendingHearings)
}

func TestEvaluateBlockers_CleanForwardNotBlocked(t *testing.T) {
	tasks := []lifecycle.Task{
		{ID: "t1", CaseID: "case-1", Stage: lifecycle.StageAdjudication, Status: "Completed"},
	}

	res := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionForward, tasks, nil)

	assert.False(t, res.Blocked)
	assert.NotNil(t, res.IncompleteTasks)
	assert.NotNil(t, res.PendingHearings)
}

func TestEvaluateBlockers_MissingCaseIDDegrades(t *testing.T) {
	tasks := []lifecycle.Task{
		{ID: "t1", CaseID: "", Stage: lifecycle.StageAdjudication, Status: "Pending"},
	}

	res := lifecycle.EvaluateBlockers("", lifecycle.StageAdjudication, lifecycle.TransitionForward, tasks, nil)

	assert.False(t, res.Blocked)
}

func TestEvaluateBlockers_Idempotent(t *testing.T) {
	tasks := []lifecycle.Task{
		{ID: "t1", CaseID: "case-1", Stage: lifecycle.StageAdjudication, Status: "Pending"},
	}
	hearings := []lifecycle.Hearing{
		{ID: "h1", CaseID: "case-1", Status: "scheduled"},
	}

	first := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionForward, tasks, hearings)
	second := lifecycle.EvaluateBlockers("case-1", lifecycle.StageAdjudication, lifecycle.TransitionForward, tasks, hearings)

	assert.Equal(t, first, second)
}

func TestOverrideNote(t *testing.T) {
	note := lifecycle.OverrideNote("Proceeding on client instruction", 2, 1)
	assert.Contains(t, note, "Proceeding on client instruction")
	assert.Contains(t, note, "Bypassed 2 incomplete task(s) and 1 pending hearing(s).")

	bare := lifecycle.OverrideNote("", 1, 0)
	assert.Equal(t, "[ADMIN OVERRIDE] Bypassed 1 incomplete task(s) and 0 pending hearing(s).", bare)
}
