package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawdesk/legal-practice-api/scheduling"
)

var testCases = []scheduling.CaseRef{
	{ID: "case-1", CaseNumber: "GST/2024/0041", Title: "Acme Traders v. Commissioner"},
	{ID: "case-2", CaseNumber: "ITA/2023/0107", Title: "Mehta Steel Appeal"},
}

var testCourts = []scheduling.CourtRef{
	{ID: "court-1", Name: "High Court, Bench II"},
	{ID: "court-2", Name: "Appellate Tribunal"},
}

func TestDetectConflicts_ExactOverlapSameCourt(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Title: "Final arguments", Date: "2026-09-14", StartTime: "10:30"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.True(t, res.HasConflicts)
	assert.Len(t, res.Conflicts, 1)
	c := res.Conflicts[0]
	assert.Equal(t, 30, c.OverlapMinutes)
	assert.Equal(t, scheduling.SeverityCritical, c.Severity)
	assert.Equal(t, "GST/2024/0041", c.CaseNumber)
	assert.Equal(t, "High Court, Bench II", c.CourtName)
	assert.Equal(t, "10:30", c.StartTime)
	assert.Equal(t, "11:30", c.EndTime)
}

func TestDetectConflicts_DifferentCourtIsWarning(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-2", CourtID: "court-2", Date: "2026-09-14", StartTime: "10:45"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.True(t, res.HasConflicts)
	assert.Equal(t, scheduling.SeverityWarning, res.Conflicts[0].Severity)
	assert.Equal(t, 15, res.Conflicts[0].OverlapMinutes)
}

func TestDetectConflicts_BackToBackDoesNotConflict(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "11:00"},
		{ID: "h2", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "09:00"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.False(t, res.HasConflicts)
	assert.Empty(t, res.Conflicts)
}

func TestDetectConflicts_NoSelfConflictWhenEditing(t *testing.T) {
	proposed := scheduling.Hearing{ID: "h1", Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:00"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.False(t, res.HasConflicts)
}

func TestDetectConflicts_Symmetry(t *testing.T) {
	a := scheduling.Hearing{ID: "ha", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:00"}
	b := scheduling.Hearing{ID: "hb", CaseID: "case-2", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:30"}

	resA := scheduling.DetectConflicts(a, []scheduling.Hearing{b}, testCases, testCourts)
	resB := scheduling.DetectConflicts(b, []scheduling.Hearing{a}, testCases, testCourts)

	assert.True(t, resA.HasConflicts)
	assert.True(t, resB.HasConflicts)
	assert.Equal(t, resA.Conflicts[0].OverlapMinutes, resB.Conflicts[0].OverlapMinutes)
	assert.Equal(t, resA.Conflicts[0].Severity, resB.Conflicts[0].Severity)
}

func TestDetectConflicts_DifferentDateIgnored(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-15", StartTime: "10:00"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.False(t, res.HasConflicts)
}

func TestDetectConflicts_MissingInputsDegradeToNoConflict(t *testing.T) {
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:00"},
	}

	noTime := scheduling.DetectConflicts(
		scheduling.Hearing{Date: "2026-09-14", CourtID: "court-1"}, existing, testCases, testCourts)
	noCourt := scheduling.DetectConflicts(
		scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00"}, existing, testCases, testCourts)
	noDate := scheduling.DetectConflicts(
		scheduling.Hearing{StartTime: "10:00", CourtID: "court-1"}, existing, testCases, testCourts)
	badTime := scheduling.DetectConflicts(
		scheduling.Hearing{Date: "2026-09-14", StartTime: "25:99", CourtID: "court-1"}, existing, testCases, testCourts)

	for _, res := range []scheduling.Result{noTime, noCourt, noDate, badTime} {
		assert.False(t, res.HasConflicts)
		assert.NotNil(t, res.Conflicts)
		assert.Empty(t, res.Conflicts)
	}
}

func TestDetectConflicts_UnknownLookupsDecorateAsUnknown(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-9"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-9", CourtID: "court-9", Date: "2026-09-14", StartTime: "10:15"},
	}

	res := scheduling.DetectConflicts(proposed, existing, nil, nil)

	assert.True(t, res.HasConflicts)
	assert.Equal(t, "Unknown", res.Conflicts[0].CaseNumber)
	assert.Equal(t, "Unknown", res.Conflicts[0].CourtName)
	assert.Equal(t, scheduling.SeverityCritical, res.Conflicts[0].Severity)
}

func TestDetectConflicts_InputOrderPreserved(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h2", CaseID: "case-2", CourtID: "court-2", Date: "2026-09-14", StartTime: "10:10"},
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:05"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.Len(t, res.Conflicts, 2)
	assert.Equal(t, "h2", res.Conflicts[0].HearingID)
	assert.Equal(t, "h1", res.Conflicts[1].HearingID)
}

func TestDetectConflicts_Idempotent(t *testing.T) {
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "10:00", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "10:30"},
	}

	first := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)
	second := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.Equal(t, first, second)
}

func TestDetectConflicts_LateEveningNoRollover(t *testing.T) {
	// 23:30 + assumed duration runs past midnight; the interval keeps
	// counting minutes on the same date instead of wrapping
	proposed := scheduling.Hearing{Date: "2026-09-14", StartTime: "23:30", CourtID: "court-1"}
	existing := []scheduling.Hearing{
		{ID: "h1", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-14", StartTime: "23:45"},
		{ID: "h2", CaseID: "case-1", CourtID: "court-1", Date: "2026-09-15", StartTime: "00:00"},
	}

	res := scheduling.DetectConflicts(proposed, existing, testCases, testCourts)

	assert.Len(t, res.Conflicts, 1)
	assert.Equal(t, "h1", res.Conflicts[0].HearingID)
	assert.Equal(t, 45, res.Conflicts[0].OverlapMinutes)
	assert.Equal(t, "24:45", res.Conflicts[0].EndTime)
}

func TestHearingFromLegacy(t *testing.T) {
	got := scheduling.HearingFromLegacy(scheduling.LegacyHearing{
		IDAlt:    "65a1",
		CaseIDs:  "case-1",
		CourtID:  "court-1",
		DateAlt:  "2026-09-14",
		StartAlt: "10:00",
	})

	assert.Equal(t, scheduling.Hearing{
		ID:        "65a1",
		CaseID:    "case-1",
		CourtID:   "court-1",
		Date:      "2026-09-14",
		StartTime: "10:00",
	}, got)
}

func TestHearingFromLegacy_CamelCaseWins(t *testing.T) {
	got := scheduling.HearingFromLegacy(scheduling.LegacyHearing{
		CaseID:  "camel",
		CaseIDs: "snake",
		Date:    "2026-09-14",
		DateAlt: "2025-01-01",
	})

	assert.Equal(t, "camel", got.CaseID)
	assert.Equal(t, "2026-09-14", got.Date)
}
