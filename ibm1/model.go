package ibm1

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteTable serializes the table as "source\ttarget\tprobability" lines in
// insertion order, separated by newlines, without a trailing newline.
func WriteTable(w io.Writer, tb *Table) error {
	bw := bufio.NewWriter(w)
	first := true
	var err error
	tb.Each(func(s, t string, p float64) {
		if err != nil {
			return
		}
		if !first {
			err = bw.WriteByte('\n')
		}
		first = false
		if err == nil {
			_, err = bw.WriteString(s + "\t" + t + "\t" + FormatProb(p))
		}
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// ReadTable parses the format written by WriteTable. Blank lines are skipped.
func ReadTable(r io.Reader) (*Table, error) {
	tb := NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("ibm1: line %d: want 3 tab-separated fields, got %d", n, len(fields))
		}
		p, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ibm1: line %d: %w", n, err)
		}
		tb.Set(fields[0], fields[1], p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tb, nil
}

// SaveTable writes the table to path.
func SaveTable(tb *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, tb); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadTable reads a table from path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadTable(f)
}

// FormatProb renders p in its shortest round-trip form. Integral values keep
// a ".0" suffix, so 0 is written "0.0".
func FormatProb(p float64) string {
	s := strconv.FormatFloat(p, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
