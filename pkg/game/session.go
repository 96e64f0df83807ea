package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/google/uuid"
)

// SessionName trims name and returns it, or a generated name when it is
// empty. Names longer than MaxSessionNameLength are rejected.
func SessionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "session-" + uuid.NewString()[:8], nil
	}
	if len(name) > constants.MaxSessionNameLength {
		return "", fmt.Errorf("session name must be at most %d characters", constants.MaxSessionNameLength)
	}
	return name, nil
}
