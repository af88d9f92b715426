package lifecycle

import "strings"

// Stage is a canonical phase in a case's lifecycle. Stages form a
// strict linear order; transitions move along it.
type Stage string

// Canonical stages, in order
const (
	StageAssessment   Stage = "Assessment"
	StageAdjudication Stage = "Adjudication"
	StageFirstAppeal  Stage = "First Appeal"
	StageTribunal     Stage = "Tribunal"
	StageHighCourt    Stage = "High Court"
	StageSupremeCourt Stage = "Supreme Court"
)

var stageOrder = []Stage{
	StageAssessment,
	StageAdjudication,
	StageFirstAppeal,
	StageTribunal,
	StageHighCourt,
	StageSupremeCourt,
}

// Stages returns the canonical stage sequence, earliest first
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// TransitionType is the direction of a stage transition
type TransitionType string

const (
	// TransitionForward advances to the single next stage
	TransitionForward TransitionType = "Forward"
	// TransitionSendBack returns to any strictly earlier stage
	TransitionSendBack TransitionType = "SendBack"
	// TransitionRemand restarts the current stage in place
	TransitionRemand TransitionType = "Remand"
)

// ParseTransitionType canonicalizes a transition type string. The
// frontend has historically sent "Send Back" and "send_back" variants.
func ParseTransitionType(raw string) (TransitionType, bool) {
	switch canonKey(raw) {
	case "forward":
		return TransitionForward, true
	case "sendback":
		return TransitionSendBack, true
	case "remand":
		return TransitionRemand, true
	}
	return "", false
}

// stageAliases maps legacy and free-text stage names onto the
// canonical set. Keys are canonKey-folded.
var stageAliases = map[string]Stage{
	"assessment":          StageAssessment,
	"scrutiny":            StageAssessment,
	"adjudication":        StageAdjudication,
	"orderinoriginal":     StageAdjudication,
	"firstappeal":         StageFirstAppeal,
	"appeal":              StageFirstAppeal,
	"commissionerappeals": StageFirstAppeal,
	"tribunal":            StageTribunal,
	"itat":                StageTribunal,
	"cestat":              StageTribunal,
	"highcourt":           StageHighCourt,
	"hc":                  StageHighCourt,
	"supremecourt":        StageSupremeCourt,
	"apexcourt":           StageSupremeCourt,
	"sc":                  StageSupremeCourt,
}

// NormalizeStage maps a raw stage string to the nearest canonical
// stage. Unrecognized values fall back to Assessment so that the
// invariant "currentStage is always canonical" holds before any
// transition logic runs.
func NormalizeStage(raw string) Stage {
	if s, ok := stageAliases[canonKey(raw)]; ok {
		return s
	}
	return StageAssessment
}

// IsCanonical reports whether s is exactly one of the canonical stages
func IsCanonical(s Stage) bool {
	return stageIndex(s) >= 0
}

// AvailableStages returns the legal next-stages for the given current
// stage and transition direction. Unknown stages or transition types
// yield an empty list, never an error: the caller treats that as "no
// valid transition possible".
func AvailableStages(current Stage, transitionType TransitionType) []Stage {
	idx := stageIndex(current)
	if idx < 0 {
		return []Stage{}
	}

	switch transitionType {
	case TransitionForward:
		if idx == len(stageOrder)-1 {
			return []Stage{}
		}
		return []Stage{stageOrder[idx+1]}
	case TransitionSendBack:
		out := make([]Stage, idx)
		copy(out, stageOrder[:idx])
		return out
	case TransitionRemand:
		return []Stage{current}
	}
	return []Stage{}
}

func stageIndex(s Stage) int {
	for i, v := range stageOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// canonKey folds case, whitespace, and punctuation so that
// "Send Back", "send_back", and "SendBack" compare equal
func canonKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
