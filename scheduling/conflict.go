package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultHearingDurationMinutes is the assumed length of a hearing when
// no explicit end time exists. Policy decision, subject to change.
const DefaultHearingDurationMinutes = 60

// Hearing is the canonical hearing snapshot the detector operates on.
// Callers adapt storage records to this shape at the boundary; see
// HearingFromLegacy for mixed-casing records.
type Hearing struct {
	ID        string `json:"id,omitempty"`
	CaseID    string `json:"caseId"`
	CourtID   string `json:"courtId"`
	Title     string `json:"title,omitempty"`
	Date      string `json:"date"`      // "YYYY-MM-DD", firm-local
	StartTime string `json:"startTime"` // 24-hour "HH:mm"
}

// CaseRef is the case lookup row used to decorate conflict messages
type CaseRef struct {
	ID         string `json:"id"`
	CaseNumber string `json:"caseNumber"`
	Title      string `json:"title"`
}

// CourtRef is the court lookup row used to decorate conflict messages
type CourtRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Severity classifies how serious a hearing conflict is
type Severity string

const (
	// SeverityCritical means the same forum: the same person cannot be
	// in two matters before one court at once
	SeverityCritical Severity = "critical"
	// SeverityWarning means a different forum; feasible only if travel
	// time allows, which this system does not model
	SeverityWarning Severity = "warning"
)

// Conflict describes one overlapping hearing
type Conflict struct {
	HearingID      string   `json:"hearingId"`
	CaseID         string   `json:"caseId"`
	CaseNumber     string   `json:"caseNumber"`
	CaseTitle      string   `json:"caseTitle"`
	HearingTitle   string   `json:"hearingTitle"`
	CourtID        string   `json:"courtId"`
	CourtName      string   `json:"courtName"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	OverlapMinutes int      `json:"overlapMinutes"`
	Severity       Severity `json:"severity"`
}

// Result is the outcome of a conflict check
type Result struct {
	HasConflicts bool       `json:"hasConflicts"`
	Conflicts    []Conflict `json:"conflicts"`
}

// DetectConflicts scans existing hearings for time overlaps with the
// proposed hearing. It is pure and side-effect-free: it performs no
// I/O, never mutates its inputs, and degrades to "no conflict" when
// the proposed hearing is missing its date, start time, or court.
// Conflicts come back in input order; no extra sort is imposed.
//
// Cross-midnight hearings are unsupported: intervals are minutes on a
// single date and never roll over to the next day.
func DetectConflicts(proposed Hearing, existing []Hearing, cases []CaseRef, courts []CourtRef) Result {
	out := Result{Conflicts: []Conflict{}}

	if proposed.Date == "" || proposed.CourtID == "" {
		return out
	}
	start, ok := parseClock(proposed.StartTime)
	if !ok {
		return out
	}
	end := start + DefaultHearingDurationMinutes

	caseIdx := make(map[string]CaseRef, len(cases))
	for _, c := range cases {
		caseIdx[c.ID] = c
	}
	courtIdx := make(map[string]CourtRef, len(courts))
	for _, c := range courts {
		courtIdx[c.ID] = c
	}

	for _, h := range existing {
		if h.Date != proposed.Date {
			continue
		}
		// never conflict with the hearing being edited
		if proposed.ID != "" && h.ID == proposed.ID {
			continue
		}
		hStart, ok := parseClock(h.StartTime)
		if !ok {
			continue
		}
		hEnd := hStart + DefaultHearingDurationMinutes

		// half-open intervals: back-to-back hearings do not overlap
		if start >= hEnd || hStart >= end {
			continue
		}

		overlap := minInt(end, hEnd) - maxInt(start, hStart)

		severity := SeverityWarning
		if h.CourtID == proposed.CourtID {
			severity = SeverityCritical
		}

		out.Conflicts = append(out.Conflicts, Conflict{
			HearingID:      h.ID,
			CaseID:         h.CaseID,
			CaseNumber:     caseNumberOrUnknown(caseIdx, h.CaseID),
			CaseTitle:      caseTitleOrUnknown(caseIdx, h.CaseID),
			HearingTitle:   h.Title,
			CourtID:        h.CourtID,
			CourtName:      courtNameOrUnknown(courtIdx, h.CourtID),
			StartTime:      formatClock(hStart),
			EndTime:        formatClock(hEnd),
			OverlapMinutes: overlap,
			Severity:       severity,
		})
	}

	out.HasConflicts = len(out.Conflicts) > 0
	return out
}

// parseClock converts 24-hour "HH:mm" to minutes since midnight
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock renders minutes since midnight as "HH:mm". Minutes past
// 23:59 keep counting without a date rollover, so an end past midnight
// renders as "24:30" rather than pretending to be the next morning.
func formatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func caseNumberOrUnknown(idx map[string]CaseRef, id string) string {
	if c, ok := idx[id]; ok && c.CaseNumber != "" {
		return c.CaseNumber
	}
	return "Unknown"
}

func caseTitleOrUnknown(idx map[string]CaseRef, id string) string {
	if c, ok := idx[id]; ok && c.Title != "" {
		return c.Title
	}
	return "Unknown"
}

func courtNameOrUnknown(idx map[string]CourtRef, id string) string {
	if c, ok := idx[id]; ok && c.Name != "" {
		return c.Name
	}
	return "Unknown"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
