package lifecycle

import (
	"fmt"
	"strings"
)

// Statuses the gate keys on. Tasks and hearings are owned by other
// components; the gate only reads snapshots of them.
const (
	TaskStatusCompleted    = "Completed"
	HearingStatusScheduled = "scheduled"
)

// Task is the task snapshot consumed by the gate
type Task struct {
	ID     string `json:"id"`
	CaseID string `json:"caseId"`
	Stage  Stage  `json:"stage"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Hearing is the hearing snapshot consumed by the gate
type Hearing struct {
	ID     string `json:"id"`
	CaseID string `json:"caseId"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// GateResult is the structured outcome of a blocker evaluation. A
// blocked transition is a result, never an error; the caller decides
// whether to show a hard block or allow with an admin override.
type GateResult struct {
	Blocked         bool      `json:"blocked"`
	IncompleteTasks []Task    `json:"incompleteTasks"`
	PendingHearings []Hearing `json:"pendingHearings"`
}

// EvaluateBlockers applies the blocking rule for a requested stage
// transition. Only Forward transitions block: a case cannot advance
// while tasks at the current stage are incomplete or hearings for the
// case are still scheduled. SendBack and Remand are always permitted
// regardless of open items.
//
// The evaluation is pure: snapshots in, fresh result out, no I/O.
func EvaluateBlockers(caseID string, current Stage, transitionType TransitionType, tasks []Task, hearings []Hearing) GateResult {
	res := GateResult{
		IncompleteTasks: []Task{},
		PendingHearings: []Hearing{},
	}

	if transitionType != TransitionForward || caseID == "" {
		return res
	}

	for _, t := range tasks {
		if t.CaseID == caseID && t.Stage == current && t.Status != TaskStatusCompleted {
			res.IncompleteTasks = append(res.IncompleteTasks, t)
		}
	}
	for _, h := range hearings {
		if h.CaseID == caseID && h.Status == HearingStatusScheduled {
			res.PendingHearings = append(res.PendingHearings, h)
		}
	}

	res.Blocked = len(res.IncompleteTasks) > 0 || len(res.PendingHearings) > 0
	return res
}

// OverrideNote appends the fixed-format audit note recorded when an
// administrator forces a blocked transition. Stage transitions are
// part of the legal audit trail, so the bypassed counts must appear
// in the persisted comment verbatim.
func OverrideNote(comment string, bypassedTasks, bypassedHearings int) string {
	note := fmt.Sprintf("[ADMIN OVERRIDE] Bypassed %d incomplete task(s) and %d pending hearing(s).",
		bypassedTasks, bypassedHearings)
	if strings.TrimSpace(comment) == "" {
		return note
	}
	return comment + "\n" + note
}
