package types

import "strings"

// Events is a set of things that happened during one tick.
type Events uint8

const (
	EventStallRecovered Events = 1 << iota
	EventWallBounce
	EventPaddleHit
	EventLeftScored
	EventRightScored
)

var eventNames = []struct {
	event Events
	name  string
}{
	{EventStallRecovered, "stall-recovered"},
	{EventWallBounce, "wall-bounce"},
	{EventPaddleHit, "paddle-hit"},
	{EventLeftScored, "left-scored"},
	{EventRightScored, "right-scored"},
}

// Has reports whether all events in other are set.
func (e Events) Has(other Events) bool {
	return e&other == other
}

// Scored reports whether either side scored.
func (e Events) Scored() bool {
	return e&(EventLeftScored|EventRightScored) != 0
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	names := make([]string, 0, len(eventNames))
	for _, n := range eventNames {
		if e.Has(n.event) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
