// File: maskio/npy.go

package maskio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NPY version 1.0, unsigned byte dtype, C order. The header dict is
// padded with spaces so the data section starts on a 64-byte boundary.

var npyMagic = []byte("\x93NUMPY")

func saveNPY(m *Mask, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	header := fmt.Sprintf("{'descr': '|u1', 'fortran_order': False, 'shape': (%d, %d), }",
		m.Height, m.Width)
	// magic(6) + version(2) + headerLen(2) + header, padded to 64.
	padded := len(npyMagic) + 4 + len(header) + 1
	if rem := padded % 64; rem != 0 {
		padded += 64 - rem
	}
	headerLen := padded - len(npyMagic) - 4

	w.Write(npyMagic)
	w.Write([]byte{1, 0})
	binary.Write(w, binary.LittleEndian, uint16(headerLen))
	w.WriteString(header)
	for i := len(header); i < headerLen-1; i++ {
		w.WriteByte(' ')
	}
	w.WriteByte('\n')

	for _, b := range m.Bits {
		if b {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func loadNPY(path string) (*Mask, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(raw) < 10 || !bytes.Equal(raw[:6], npyMagic) {
		return nil, fmt.Errorf("%s: not an NPY file", path)
	}
	major := raw[6]
	if major != 1 {
		return nil, fmt.Errorf("%s: unsupported NPY version %d", path, major)
	}
	headerLen := int(binary.LittleEndian.Uint16(raw[8:10]))
	if len(raw) < 10+headerLen {
		return nil, fmt.Errorf("%s: truncated NPY header", path)
	}
	header := string(raw[10 : 10+headerLen])

	descr, err := npyHeaderValue(header, "descr")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if descr != "|u1" && descr != "|b1" {
		return nil, fmt.Errorf("%s: unsupported NPY dtype %q", path, descr)
	}
	if strings.Contains(header, "'fortran_order': True") {
		return nil, fmt.Errorf("%s: fortran-order NPY not supported", path)
	}

	height, width, err := npyHeaderShape(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data := raw[10+headerLen:]
	if len(data) < height*width {
		return nil, fmt.Errorf("%s: NPY data shorter than shape (%d, %d)", path, height, width)
	}

	m := &Mask{Bits: make([]bool, height*width), Height: height, Width: width}
	for i := range m.Bits {
		m.Bits[i] = data[i] != 0
	}
	return m, nil
}

func npyHeaderValue(header, key string) (string, error) {
	marker := "'" + key + "': "
	idx := strings.Index(header, marker)
	if idx < 0 {
		return "", fmt.Errorf("NPY header missing %s", key)
	}
	rest := header[idx+len(marker):]
	if len(rest) == 0 || rest[0] != '\'' {
		return "", fmt.Errorf("NPY header %s is not a string", key)
	}
	end := strings.IndexByte(rest[1:], '\'')
	if end < 0 {
		return "", io.ErrUnexpectedEOF
	}
	return rest[1 : 1+end], nil
}

func npyHeaderShape(header string) (int, int, error) {
	start := strings.IndexByte(header, '(')
	end := strings.IndexByte(header, ')')
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("NPY header missing shape")
	}
	parts := strings.Split(header[start+1:end], ",")
	var dims []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, fmt.Errorf("bad NPY shape element %q", p)
		}
		dims = append(dims, n)
	}
	switch len(dims) {
	case 2:
		return dims[0], dims[1], nil
	case 1:
		return 1, dims[0], nil
	default:
		return 0, 0, fmt.Errorf("NPY shape has %d dimensions, want 2", len(dims))
	}
}
