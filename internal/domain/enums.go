package domain

import "fmt"

type SessionType string

const (
	SessionGraph SessionType = "graph"
	SessionRush  SessionType = "rush"
)

// ValidSessionTypes is the canonical set of accepted session type strings.
var ValidSessionTypes = map[string]bool{
	"graph": true, "rush": true,
}

// ParseSessionType converts a raw table value into a SessionType.
func ParseSessionType(s string) (SessionType, error) {
	if !ValidSessionTypes[s] {
		return "", fmt.Errorf("session type %q must be one of graph, rush", s)
	}
	return SessionType(s), nil
}
