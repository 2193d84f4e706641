package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileHighScoreStore persists the best score as a single integer in a plain
// text file. Read and write failures are reported to the caller as "no score
// known" or logged, never surfaced into game state; a broken score file must
// not interrupt play.
type FileHighScoreStore struct {
	path string
	mu   sync.Mutex
}

// NewFileHighScoreStore creates a store backed by the given file path.
// The file is created lazily on the first save.
func NewFileHighScoreStore(path string) *FileHighScoreStore {
	return &FileHighScoreStore{path: path}
}

// Load reads the persisted best score. Returns ok=false when the file is
// missing or unreadable.
func (f *FileHighScoreStore) Load() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, false
	}
	score, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

// Save writes the best score, overwriting any previous value
func (f *FileHighScoreStore) Save(score uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := []byte(strconv.FormatUint(score, 10) + "\n")
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		fmt.Printf("Warning: Failed to persist high score to %s: %v\n", f.path, err)
	}
}
