// Package runtime wires the engine together: channels, locks, workers and the files they load.
package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"swipe-lab/errors"
)

//go:embed censored/*
var censoredFolder embed.FS

// CensoredData is the merged blacklist plus the languages it came from.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader reads one blacklist file per language, {lang}.txt, one word or phrase per line.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// DefaultCensoredLoader reads the lists shipped with the binary.
func DefaultCensoredLoader() *CensoredLoader {
	return NewCensoredLoader(censoredFolder)
}

func (l *CensoredLoader) LoadAll(dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		// Scanner copes with \r\n, strings.Split does not
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}
	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	sort.Strings(words)
	return &CensoredData{Words: words, Languages: languages}, nil
}
