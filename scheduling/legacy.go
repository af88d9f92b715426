package scheduling

// LegacyHearing matches hearing payloads from the old frontend, which
// mixed snake_case and camelCase field names on the same records. The
// adapter below collapses the fallback chains once, so the detector
// only ever sees the canonical Hearing shape.
type LegacyHearing struct {
	ID      string `json:"id"`
	IDAlt   string `json:"_id"`
	CaseID  string `json:"caseId"`
	CaseIDs string `json:"case_id"`

	CourtID  string `json:"courtId"`
	CourtIDs string `json:"court_id"`

	Title string `json:"title"`

	Date     string `json:"date"`
	DateAlt  string `json:"hearing_date"`
	Start    string `json:"startTime"`
	StartAlt string `json:"start_time"`
}

// HearingFromLegacy canonicalizes a mixed-casing hearing record
func HearingFromLegacy(raw LegacyHearing) Hearing {
	return Hearing{
		ID:        firstNonEmpty(raw.ID, raw.IDAlt),
		CaseID:    firstNonEmpty(raw.CaseID, raw.CaseIDs),
		CourtID:   firstNonEmpty(raw.CourtID, raw.CourtIDs),
		Title:     raw.Title,
		Date:      firstNonEmpty(raw.Date, raw.DateAlt),
		StartTime: firstNonEmpty(raw.Start, raw.StartAlt),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
