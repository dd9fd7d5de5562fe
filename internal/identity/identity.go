// Package identity manages the locally generated anonymous client id used
// to tag telemetry events. The id is a UUID persisted under the user's
// data directory; nothing else about the user is stored.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultIDPath resolves the client id file path in priority order:
// 1. MKTQUIZ_ID environment variable
// 2. $XDG_DATA_HOME/mktquiz/client_id
// 3. ~/.local/share/mktquiz/client_id
func DefaultIDPath() (string, error) {
	if p := os.Getenv("MKTQUIZ_ID"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "mktquiz", "client_id"), nil
}

// ClientID returns the stored anonymous id, creating and persisting a new
// UUID on first use. A persistence failure degrades to an ephemeral id
// rather than blocking the quiz.
func ClientID() (string, error) {
	path, err := DefaultIDPath()
	if err != nil {
		return uuid.NewString(), err
	}
	return clientIDAt(path)
}

func clientIDAt(path string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return id, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return id, fmt.Errorf("persist client id: %w", err)
	}
	return id, nil
}
