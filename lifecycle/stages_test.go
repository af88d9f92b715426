package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawdesk/legal-practice-api/lifecycle"
)

func TestAvailableStages_ForwardIsSingleNextStage(t *testing.T) {
	got := lifecycle.AvailableStages(lifecycle.StageAssessment, lifecycle.TransitionForward)
	assert.Equal(t, []lifecycle.Stage{lifecycle.StageAdjudication}, got)

	got = lifecycle.AvailableStages(lifecycle.StageHighCourt, lifecycle.TransitionForward)
	assert.Equal(t, []lifecycle.Stage{lifecycle.StageSupremeCourt}, got)
}

func TestAvailableStages_TerminalStageHasNoForward(t *testing.T) {
	got := lifecycle.AvailableStages(lifecycle.StageSupremeCourt, lifecycle.TransitionForward)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestAvailableStages_SendBackIsAllEarlierStages(t *testing.T) {
	got := lifecycle.AvailableStages(lifecycle.StageTribunal, lifecycle.TransitionSendBack)
	assert.Equal(t, []lifecycle.Stage{
		lifecycle.StageAssessment,
		lifecycle.StageAdjudication,
		lifecycle.StageFirstAppeal,
	}, got)

	got = lifecycle.AvailableStages(lifecycle.StageAssessment, lifecycle.TransitionSendBack)
	assert.Empty(t, got)
}

func TestAvailableStages_RemandRestartsInPlace(t *testing.T) {
	got := lifecycle.AvailableStages(lifecycle.StageAdjudication, lifecycle.TransitionRemand)
	assert.Equal(t, []lifecycle.Stage{lifecycle.StageAdjudication}, got)
}

func TestAvailableStages_UnknownStageOrTypeYieldsEmpty(t *testing.T) {
	assert.Empty(t, lifecycle.AvailableStages("Mediation", lifecycle.TransitionForward))
	assert.Empty(t, lifecycle.AvailableStages(lifecycle.StageTribunal, "Sideways"))
	assert.Empty(t, lifecycle.AvailableStages("", lifecycle.TransitionForward))
}

func TestNormalizeStage(t *testing.T) {
	assert.Equal(t, lifecycle.StageFirstAppeal, lifecycle.NormalizeStage("first appeal"))
	assert.Equal(t, lifecycle.StageFirstAppeal, lifecycle.NormalizeStage("Commissioner (Appeals)"))
	assert.Equal(t, lifecycle.StageTribunal, lifecycle.NormalizeStage("ITAT"))
	assert.Equal(t, lifecycle.StageHighCourt, lifecycle.NormalizeStage("high_court"))
	assert.Equal(t, lifecycle.StageSupremeCourt, lifecycle.NormalizeStage(" Supreme Court "))
	// unknown values fall back to the earliest stage
	assert.Equal(t, lifecycle.StageAssessment, lifecycle.NormalizeStage("totally new stage"))
	assert.Equal(t, lifecycle.StageAssessment, lifecycle.NormalizeStage(""))
}

func TestParseTransitionType(t *testing.T) {
	for raw, want := range map[string]lifecycle.TransitionType{
		"Forward":   lifecycle.TransitionForward,
		"forward":   lifecycle.TransitionForward,
		"SendBack":  lifecycle.TransitionSendBack,
		"Send Back": lifecycle.TransitionSendBack,
		"send_back": lifecycle.TransitionSendBack,
		"Remand":    lifecycle.TransitionRemand,
	} {
		got, ok := lifecycle.ParseTransitionType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := lifecycle.ParseTransitionType("Sideways")
	assert.False(t, ok)
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, lifecycle.IsCanonical(lifecycle.StageTribunal))
	assert.False(t, lifecycle.IsCanonical("tribunal"))
	assert.False(t, lifecycle.IsCanonical(""))
}
