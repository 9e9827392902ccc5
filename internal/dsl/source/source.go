// Package source implements the line reader (component L): it turns a file
// or an in-memory string into an ordered sequence of raw source lines.
// Grounded on the teacher's resolver.go, which reads a whole file with
// os.ReadFile before handing it to the lexer — materializing the full
// input up front rather than streaming it (§5: "contents are fully
// materialized before parsing begins").
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RawLine is one physical line of input before tokenization, numbered
// 1-based within the file or fragment it came from.
type RawLine struct {
	Number int
	Text   string
}

// ReadFile reads a single regular file into an ordered sequence of raw
// lines. Line endings are \r?\n per the lexical surface (§6).
func ReadFile(path string) ([]RawLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	return scan(f)
}

// ReadString reads an in-memory fragment into raw lines.
func ReadString(s string) []RawLine {
	lines, _ := scan(strings.NewReader(s))
	return lines
}

func scan(r interface{ Read([]byte) (int, error) }) ([]RawLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []RawLine
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSuffix(sc.Text(), "\r")
		lines = append(lines, RawLine{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}

// WalkDir recursively enumerates every regular file beneath dir, in a
// stable filesystem order, per parse(path)'s directory-handling rule (§6).
func WalkDir(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		full := dir + string(os.PathSeparator) + e.Name()
		if e.IsDir() {
			sub, err := WalkDir(full)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if e.Type().IsRegular() {
			files = append(files, full)
		}
	}
	return files, nil
}
