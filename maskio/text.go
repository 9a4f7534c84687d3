// File: maskio/text.go

package maskio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Text masks are a whitespace-separated grid of numbers, one row per
// line: nonzero means valid. Saving writes 0s and 1s. Blank lines and
// lines starting with # are skipped on load.

func saveText(m *Mask, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			if m.Bits[row*m.Width+col] {
				w.WriteByte('1')
			} else {
				w.WriteByte('0')
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func loadText(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var bits []bool
	width := 0
	height := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, height+1, len(fields), width)
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad mask value %q", path, field)
			}
			bits = append(bits, v != 0)
		}
		height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if height == 0 {
		return nil, fmt.Errorf("%s: empty mask file", path)
	}

	return &Mask{Bits: bits, Height: height, Width: width}, nil
}
