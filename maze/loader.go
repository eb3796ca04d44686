package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineBytes caps a single input line, leaving room for surrounding
// whitespace around a MaxDimension-wide row.
const maxLineBytes = 2 * MaxDimension

// Parse reads a maze in text format from r: one row per line, surrounding
// whitespace trimmed, blank lines skipped. A line longer than maxLineBytes
// or more than MaxDimension rows yields ErrTooLarge.
func Parse(r io.Reader) (*Maze, error) {
	var grid [][]Cell
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(grid) == MaxDimension {
			return nil, fmt.Errorf("%w: more than %d rows", ErrTooLarge, MaxDimension)
		}
		row := make([]Cell, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = Cell(line[i])
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d longer than %d bytes", ErrTooLarge, len(grid)+1, maxLineBytes)
		}
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return New(grid)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses the maze file at path. A missing file yields an
// error wrapping ErrFileNotFound; parse failures wrap ErrMalformedMaze.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("maze: load %s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path in text format, creating or truncating the file.
func Save(path string, m *Maze) error {
	if err := os.WriteFile(path, []byte(m.String()), 0o644); err != nil {
		return fmt.Errorf("maze: save %s: %w", path, err)
	}

	return nil
}
