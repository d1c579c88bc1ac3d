// Prompt-boundary location within an ordered transcript

package chatgpt

import "strings"

// BoundaryTier records which policy produced a ReplySegment.
type BoundaryTier int

const (
	// TierNone means no reply could be located at all.
	TierNone BoundaryTier = iota

	// TierPromptAnchor means the sent prompt was found in the transcript and
	// the reply is everything strictly after it.
	TierPromptAnchor

	// TierTailFallback means the prompt was not found and the reply is the
	// trailing tailSize nodes, traded precision for availability.
	TierTailFallback
)

// ReplySegment is the candidate reply extracted from an ordered transcript.
type ReplySegment struct {
	Nodes []ScreenTextNode

	// PromptIndex is the transcript index of the node matching the sent
	// prompt, or -1 when the match tier is not TierPromptAnchor.
	PromptIndex int

	Tier BoundaryTier
}

// Text joins the segment's nodes with paragraph separation.
func (s ReplySegment) Text() string {
	parts := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		parts = append(parts, n.Text)
	}
	return strings.Join(parts, "\n\n")
}

// locatorState drives the boundary scan. The explicit state machine keeps the
// fallback policy independently testable instead of burying it in nested
// conditionals.
type locatorState int

const (
	scanningForPrompt locatorState = iota
	collectingReply
)

// LocateReply finds the boundary between the injected prompt and the
// application's reply in a transcript already ordered top-to-bottom.
//
// The first node containing sentPrompt as a substring is the anchor; every
// node strictly after it is the reply. Substring matching is used because the
// target application may re-wrap or truncate the rendered prompt. When no
// node matches and the transcript holds more than tailSize nodes, the last
// tailSize nodes are returned as a best-effort reply; shorter transcripts
// yield an empty segment, which is a valid state rather than an error.
func LocateReply(transcript []ScreenTextNode, sentPrompt string, tailSize int) ReplySegment {
	seg := ReplySegment{PromptIndex: -1, Tier: TierNone}

	state := scanningForPrompt
	for i, node := range transcript {
		switch state {
		case scanningForPrompt:
			if strings.Contains(node.Text, sentPrompt) {
				seg.PromptIndex = i
				seg.Tier = TierPromptAnchor
				state = collectingReply
			}
		case collectingReply:
			seg.Nodes = append(seg.Nodes, node)
		}
	}
	if state != scanningForPrompt {
		return seg
	}

	if tailSize > 0 && len(transcript) > tailSize {
		seg.Nodes = append(seg.Nodes, transcript[len(transcript)-tailSize:]...)
		seg.Tier = TierTailFallback
	}
	return seg
}

// userTurnPrefixes are the labels the target application renders at the head
// of a user turn. Used by LastMessageSegment as the boundary when no fresh
// prompt is available to anchor on.
var userTurnPrefixes = []string{"You said"}

// LastMessageSegment extracts the most recent reply from a transcript without
// a prompt anchor: everything after the last recognizable user-turn marker,
// or the whole transcript when no marker is present.
func LastMessageSegment(transcript []ScreenTextNode) ReplySegment {
	last := -1
	for i, node := range transcript {
		for _, prefix := range userTurnPrefixes {
			if strings.HasPrefix(node.Text, prefix) {
				last = i
				break
			}
		}
	}

	seg := ReplySegment{PromptIndex: last, Tier: TierTailFallback}
	if last >= 0 {
		seg.Tier = TierPromptAnchor
	}
	seg.Nodes = append(seg.Nodes, transcript[last+1:]...)
	return seg
}
