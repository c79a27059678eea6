// Package input locates and reads puzzle input files.
//
// Files live under a data root as aoc<year>/data/Day<day>_Data<suffix>.txt,
// where the suffix selects the full input, the worked example or a debug
// variant.
package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("advent.input")

// Kind selects which variant of a day's input to load.
type Kind int

const (
	Data Kind = iota
	Example
	Debug
)

var kindNames = map[Kind]string{
	Data:    "data",
	Example: "example",
	Debug:   "debug",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// suffix is appended to the file name for k.
func (k Kind) suffix() string {
	switch k {
	case Example:
		return "Example"
	case Debug:
		return "Debug"
	default:
		return ""
	}
}

// ParseKind accepts the names printed by Kind.String, case insensitively.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return Data, fmt.Errorf("unknown input kind %q (expected data, example or debug)", s)
}

// Source identifies one input file.
type Source struct {
	Year int
	Day  int
	Kind Kind
}

func (s Source) String() string {
	return fmt.Sprintf("%d/day%d/%s", s.Year, s.Day, s.Kind)
}

// Validate checks that the day is a puzzle day.
func (s Source) Validate() error {
	if s.Day < 1 || s.Day > 25 {
		return fmt.Errorf("day %d out of range 1-25", s.Day)
	}
	if s.Year < 2015 {
		return fmt.Errorf("year %d predates the puzzles", s.Year)
	}
	return nil
}

// Loader reads inputs below Root.
type Loader struct {
	Root string
}

// NewLoader returns a Loader rooted at root. An empty root falls back to
// $ADVENT_DATA and then to "data".
func NewLoader(root string) *Loader {
	if root == "" {
		root = os.Getenv("ADVENT_DATA")
	}
	if root == "" {
		root = "data"
	}
	return &Loader{Root: root}
}

// Path returns the file that holds src.
func (l *Loader) Path(src Source) string {
	name := fmt.Sprintf("Day%d_Data%s.txt", src.Day, src.Kind.suffix())
	return filepath.Join(l.Root, fmt.Sprintf("aoc%d", src.Year), "data", name)
}

// Load reads the whole input for src.
func (l *Loader) Load(src Source) (string, error) {
	if err := src.Validate(); err != nil {
		return "", err
	}
	path := l.Path(src)
	log.Debugf("loading %s from %s", src, path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", src, err)
	}
	return string(data), nil
}

// LoadContext is Load for callers that need to give up early. The read runs
// in its own goroutine; if ctx is done first, ctx.Err() is returned.
func (l *Loader) LoadContext(ctx context.Context, src Source) (string, error) {
	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := l.Load(src)
		done <- result{text, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}

// ReadFile reads a file by path, with "-" meaning standard input.
func ReadFile(path string) (string, error) {
	if path == "-" {
		log.Debug("reading standard input")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	log.Debugf("reading %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
