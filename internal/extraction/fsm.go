package extraction

import (
	"fmt"

	"github.com/oakfield-labs/docuflow/constants"
)

// transitions enumerates every legal extraction status transition; anything
// absent from the table is rejected. COMPLETED -> VERIFIED is driven by
// human action, everything else by the pipeline.
var transitions = map[constants.ExtractionStatus][]constants.ExtractionStatus{
	// ERROR from UPLOADED covers failures before parsing starts, such as a
	// template that vanished between submission and dispatch.
	constants.ExtractionUploaded:   {constants.ExtractionParsing, constants.ExtractionCancelled, constants.ExtractionError},
	constants.ExtractionParsing:    {constants.ExtractionParsed, constants.ExtractionError},
	constants.ExtractionParsed:     {constants.ExtractionExtracting, constants.ExtractionError},
	constants.ExtractionExtracting: {constants.ExtractionCompleted, constants.ExtractionError},
	constants.ExtractionCompleted:  {constants.ExtractionVerified},
}

// discoveryTransitions is the template-discovery track on physical files.
var discoveryTransitions = map[constants.DocumentStatus][]constants.DocumentStatus{
	constants.DocumentUploaded:  {constants.DocumentAnalyzing},
	constants.DocumentAnalyzing: {constants.DocumentTemplateMatched, constants.DocumentTemplateNeeded},
	// re-analysis after templates change
	constants.DocumentTemplateNeeded:  {constants.DocumentAnalyzing},
	constants.DocumentTemplateMatched: {constants.DocumentAnalyzing},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to constants.ExtractionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status move, returning an error for anything not
// in the table.
func Transition(from, to constants.ExtractionStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("illegal extraction transition %s -> %s", from, to)
	}
	return nil
}

// IsTerminal reports whether a status has no outgoing pipeline transitions.
func IsTerminal(s constants.ExtractionStatus) bool {
	switch s {
	case constants.ExtractionVerified, constants.ExtractionError, constants.ExtractionCancelled:
		return true
	case constants.ExtractionCompleted:
		// terminal for the pipeline; only verification may follow
		return true
	default:
		return false
	}
}

// CanTransitionDiscovery reports whether a discovery move is legal.
func CanTransitionDiscovery(from, to constants.DocumentStatus) bool {
	for _, next := range discoveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
