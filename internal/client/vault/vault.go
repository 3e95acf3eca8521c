// Package vault persists the current identity across restarts: a single
// durable slot holding one serialized user, the desktop analog of the
// browser's local storage key.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillhive/marketplace/internal/core/domain"
)

// ErrCorrupt reports that the stored identity failed to parse. Callers are
// expected to Clear the slot and continue unauthenticated.
var ErrCorrupt = errors.New("stored identity is corrupt")

// FileVault stores the identity as a JSON file, written atomically via a
// temp file rename so a crash mid-write never leaves a half-written slot.
type FileVault struct {
	path string
}

func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

// Load reads the persisted identity. Returns (nil, nil) when the slot is
// empty and ErrCorrupt when the stored bytes do not parse.
func (v *FileVault) Load() (*domain.User, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("vault read: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if user.ID == 0 || user.Role == "" {
		return nil, ErrCorrupt
	}
	return &user, nil
}

// Store persists the identity, replacing any previous value.
func (v *FileVault) Store(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("vault marshal: %w", err)
	}

	if dir := filepath.Dir(v.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("vault mkdir: %w", err)
		}
	}

	tmp := v.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("vault write: %w", err)
	}
	if err := os.Rename(tmp, v.path); err != nil {
		return fmt.Errorf("vault rename: %w", err)
	}
	return nil
}

// Clear removes the slot. Clearing an already-empty slot is a no-op.
func (v *FileVault) Clear() error {
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("vault clear: %w", err)
	}
	return nil
}
