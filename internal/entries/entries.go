// Package entries defines the closed set of report entry types the connector
// knows about and the static warehouse table schema belonging to each one.
// Every entry type maps to exactly one table; the provisioning job consumes
// these descriptors generically instead of hand-writing one task body per
// table.
package entries

import "fmt"

// Type is one of the fixed record categories produced by the observer.
type Type int

const (
	InitiatedCall Type = iota
	FinishedCall
	JoinedPeerConnection
	DetachedPeerConnection
	RemoteInboundRTP
	OutboundRTP
	InboundRTP
	ICECandidatePair
	ICELocalCandidate
	ICERemoteCandidate
	MediaSource
	Track
	UserMediaError
)

var names = map[Type]string{
	InitiatedCall:          "InitiatedCall",
	FinishedCall:           "FinishedCall",
	JoinedPeerConnection:   "JoinedPeerConnection",
	DetachedPeerConnection: "DetachedPeerConnection",
	RemoteInboundRTP:       "RemoteInboundRTP",
	OutboundRTP:            "OutboundRTP",
	InboundRTP:             "InboundRTP",
	ICECandidatePair:       "ICECandidatePair",
	ICELocalCandidate:      "ICELocalCandidate",
	ICERemoteCandidate:     "ICERemoteCandidate",
	MediaSource:            "MediaSource",
	Track:                  "Track",
	UserMediaError:         "UserMediaError",
}

// String returns the canonical entry type name as used in configuration.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// All returns every entry type in declaration order.
func All() []Type {
	return []Type{
		InitiatedCall,
		FinishedCall,
		JoinedPeerConnection,
		DetachedPeerConnection,
		RemoteInboundRTP,
		OutboundRTP,
		InboundRTP,
		ICECandidatePair,
		ICELocalCandidate,
		ICERemoteCandidate,
		MediaSource,
		Track,
		UserMediaError,
	}
}

// Parse resolves a canonical entry type name, as written in configuration.
func Parse(s string) (Type, error) {
	for t, name := range names {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown entry type %q", s)
}
