package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Plain text file names used by FileStore.
const (
	HighScoreFile = "highscore.txt"
	ProgressFile  = "progress.txt"
	SettingsFile  = "settings.txt"
)

// FileStore keeps persistence values in plain text files inside a directory:
// a single integer per file for high score and progress, and key=value lines
// for settings.
type FileStore struct {
	dir string
}

var _ Persistence = (*FileStore)(nil)

// OpenFiles creates the directory if needed and returns a FileStore on it.
func OpenFiles(dir string) (*FileStore, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the files.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", name, err)
	}
	return data, nil
}

func (f *FileStore) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(f.dir, name), data, 0o644); err != nil {
		return &WriteError{Key: name, Err: err}
	}
	return nil
}

func (f *FileStore) readInt(name string) (int, error) {
	data, err := f.read(name)
	if err != nil {
		return 0, err
	}
	v := strings.TrimSpace(string(data))
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ParseError{Key: name, Value: v, Err: err}
	}
	return n, nil
}

// HighScore reads highscore.txt.
func (f *FileStore) HighScore() (int, error) {
	return f.readInt(HighScoreFile)
}

// SaveHighScore writes highscore.txt.
func (f *FileStore) SaveHighScore(score int) error {
	return f.write(HighScoreFile, []byte(strconv.Itoa(score)))
}

// UnlockedLevel reads progress.txt.
func (f *FileStore) UnlockedLevel() (int, error) {
	return f.readInt(ProgressFile)
}

// SaveUnlockedLevel writes progress.txt.
func (f *FileStore) SaveUnlockedLevel(level int) error {
	return f.write(ProgressFile, []byte(strconv.Itoa(level)))
}

// Settings reads settings.txt. Unknown keys are ignored and missing keys
// keep their defaults.
func (f *FileStore) Settings() (Settings, error) {
	data, err := f.read(SettingsFile)
	if err != nil {
		return DefaultSettings(), err
	}

	st := DefaultSettings()
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return DefaultSettings(), &ParseError{Key: SettingsFile, Value: line, Err: errors.New("missing '='")}
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case keyVolume:
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return DefaultSettings(), &ParseError{Key: keyVolume, Value: value, Err: err}
			}
			st.Volume = v
		case keyShowFPS:
			b, err := parseFlag(value)
			if err != nil {
				return DefaultSettings(), &ParseError{Key: keyShowFPS, Value: value, Err: err}
			}
			st.ShowFPS = b
		}
	}
	return st, nil
}

// SaveSettings writes settings.txt.
func (f *FileStore) SaveSettings(st Settings) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", keyVolume, formatVolume(st.Volume))
	fmt.Fprintf(&b, "%s=%s\n", keyShowFPS, formatFlag(st.ShowFPS))
	return f.write(SettingsFile, []byte(b.String()))
}

// Close is a no-op; files are not held open.
func (f *FileStore) Close() error {
	return nil
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "true", "on":
		return true, nil
	case "0", "false", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid flag %q", v)
	}
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
