package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakfield-labs/docuflow/constants"
)

func TestCanTransition(t *testing.T) {
	legal := []struct {
		from, to constants.ExtractionStatus
	}{
		{constants.ExtractionUploaded, constants.ExtractionParsing},
		{constants.ExtractionUploaded, constants.ExtractionCancelled},
		{constants.ExtractionUploaded, constants.ExtractionError},
		{constants.ExtractionParsing, constants.ExtractionParsed},
		{constants.ExtractionParsing, constants.ExtractionError},
		{constants.ExtractionParsed, constants.ExtractionExtracting},
		{constants.ExtractionParsed, constants.ExtractionError},
		{constants.ExtractionExtracting, constants.ExtractionCompleted},
		{constants.ExtractionExtracting, constants.ExtractionError},
		{constants.ExtractionCompleted, constants.ExtractionVerified},
	}
	for _, tt := range legal {
		assert.True(t, CanTransition(tt.from, tt.to), "%s -> %s should be legal", tt.from, tt.to)
	}

	illegal := []struct {
		from, to constants.ExtractionStatus
	}{
		{constants.ExtractionUploaded, constants.ExtractionCompleted},
		{constants.ExtractionUploaded, constants.ExtractionVerified},
		{constants.ExtractionParsing, constants.ExtractionCompleted},
		{constants.ExtractionCompleted, constants.ExtractionParsing},
		{constants.ExtractionVerified, constants.ExtractionCompleted},
		{constants.ExtractionError, constants.ExtractionParsing},
		{constants.ExtractionCancelled, constants.ExtractionParsing},
		{constants.ExtractionCompleted, constants.ExtractionError},
	}
	for _, tt := range illegal {
		assert.False(t, CanTransition(tt.from, tt.to), "%s -> %s should be rejected", tt.from, tt.to)
	}
}

func TestTransitionError(t *testing.T) {
	assert.NoError(t, Transition(constants.ExtractionUploaded, constants.ExtractionParsing))
	err := Transition(constants.ExtractionVerified, constants.ExtractionParsing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "illegal extraction transition")
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(constants.ExtractionVerified))
	assert.True(t, IsTerminal(constants.ExtractionError))
	assert.True(t, IsTerminal(constants.ExtractionCancelled))
	assert.True(t, IsTerminal(constants.ExtractionCompleted))
	assert.False(t, IsTerminal(constants.ExtractionUploaded))
	assert.False(t, IsTerminal(constants.ExtractionParsing))
}

func TestDiscoveryTransitions(t *testing.T) {
	assert.True(t, CanTransitionDiscovery(constants.DocumentUploaded, constants.DocumentAnalyzing))
	assert.True(t, CanTransitionDiscovery(constants.DocumentAnalyzing, constants.DocumentTemplateMatched))
	assert.True(t, CanTransitionDiscovery(constants.DocumentAnalyzing, constants.DocumentTemplateNeeded))
	assert.True(t, CanTransitionDiscovery(constants.DocumentTemplateNeeded, constants.DocumentAnalyzing))
	assert.False(t, CanTransitionDiscovery(constants.DocumentUploaded, constants.DocumentTemplateMatched))
	assert.False(t, CanTransitionDiscovery(constants.DocumentTemplateMatched, constants.DocumentTemplateNeeded))
}
