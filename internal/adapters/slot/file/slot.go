package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports"
)

const (
	slotFileMode    = 0o600
	slotDirMode     = 0o700
	slotFileSuffix  = ".json"
	tempFilePattern = ".slot-*.json.tmp"
)

// Slot stores one named value as a file under dir. Writes go through a temp
// file and a rename so readers never see a partial value.
type Slot struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.StateSlot = (*Slot)(nil)

func NewSlot(dir, name string) (*Slot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("slot name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid slot name %q", name)
	}
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("slot directory is empty")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve slot directory: %w", err)
	}
	path := filepath.Join(filepath.Clean(absDir), name+slotFileSuffix)

	return &Slot{path: path, mu: lockForPath(path)}, nil
}

func (s *Slot) Path() string {
	return s.path
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}

	return data, nil
}

func (s *Slot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, slotDirMode); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp slot file: %w", err)
	}

	if err := tempFile.Chmod(slotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp slot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp slot file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
