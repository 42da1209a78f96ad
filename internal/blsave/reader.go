// Package blsave reads Blockland text saves (.bls).
//
// A save is Windows-1252 text: a header line, a description line count
// followed by the description, the 64-entry color palette as linear
// "r g b a" floats, a "Linecount N" line and one line per brick:
//
//	1x1" -4.25 1.75 0.3 0 1 0  0 0 1 1 1
//
// The brick name ends at the quote. The fields after it are position,
// angle, baseplate, color index, print (possibly empty), color effect,
// shape effect, raycasting, collision and rendering. Lines starting with
// "+-" attach properties to the previous brick and are skipped.
package blsave

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"bls2brs/internal/brick"
)

// PaletteSize is the number of colors in a save palette.
const PaletteSize = 64

const (
	headerPrefix    = "This is a Blockland save file."
	linecountPrefix = "Linecount "
	propertyPrefix  = "+-"
	maxLineSize     = 1 << 20
)

// ErrFormat is returned for input that is not a well-formed save.
var ErrFormat = errors.New("malformed Blockland save")

// Reader streams the bricks of a save. It implements convert.Source.
type Reader struct {
	scanner *bufio.Scanner
	line    int

	description string
	colors      []brick.LinearColor
	count       int
	hasCount    bool

	pending string
	hasNext bool
}

// NewReader decodes r as Windows-1252 and reads the save header, the
// description and the palette.
func NewReader(r io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	rd := &Reader{scanner: scanner}

	if err := rd.readHeader(); err != nil {
		return nil, err
	}

	return rd, nil
}

// OpenFile opens a save file. The caller closes the returned file once
// done with the reader.
func OpenFile(path string) (*Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open save %s: %w", path, err)
	}

	rd, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("save %s: %w", path, err)
	}

	return rd, f, nil
}

// Description returns the save description, lines joined with "\n".
func (r *Reader) Description() string { return r.description }

// Colors returns the linear palette.
func (r *Reader) Colors() []brick.LinearColor { return r.colors }

// CountHint returns the brick count announced by the save.
func (r *Reader) CountHint() (int, bool) { return r.count, r.hasCount }

func (r *Reader) readHeader() error {
	header, ok, err := r.readLine()
	if err != nil {
		return err
	}

	if !ok || !strings.HasPrefix(header, headerPrefix) {
		return r.errorf("missing save header")
	}

	countLine, ok, err := r.readLine()
	if err != nil {
		return err
	}

	if !ok {
		return r.errorf("missing description line count")
	}

	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || n < 0 {
		return r.errorf("bad description line count %q", countLine)
	}

	desc := make([]string, 0, n)

	for range n {
		line, ok, err := r.readLine()
		if err != nil {
			return err
		}

		if !ok {
			return r.errorf("description ends early")
		}

		desc = append(desc, line)
	}

	r.description = strings.Join(desc, "\n")
	r.colors = make([]brick.LinearColor, 0, PaletteSize)

	for len(r.colors) < PaletteSize {
		line, ok, err := r.readLine()
		if err != nil {
			return err
		}

		if !ok {
			return r.errorf("palette ends after %d colors", len(r.colors))
		}

		if strings.HasPrefix(line, linecountPrefix) {
			// Short palette.
			return r.parseLinecount(line)
		}

		c, err := parseLinearColor(line)
		if err != nil {
			return r.errorf("palette color %d: %v", len(r.colors), err)
		}

		r.colors = append(r.colors, c)
	}

	return r.skipToLinecount()
}

// skipToLinecount consumes lines until "Linecount N". Saves without one
// go straight to bricks; the first brick line is kept for Next.
func (r *Reader) skipToLinecount() error {
	for {
		line, ok, err := r.readLine()
		if err != nil || !ok {
			return err
		}

		if strings.HasPrefix(line, linecountPrefix) {
			return r.parseLinecount(line)
		}

		if strings.Contains(line, `"`) {
			r.pending, r.hasNext = line, true
			return nil
		}
	}
}

func (r *Reader) parseLinecount(line string) error {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, linecountPrefix)))
	if err != nil || n < 0 {
		return r.errorf("bad line count %q", line)
	}

	r.count, r.hasCount = n, true

	return nil
}

// Next returns the next brick, or io.EOF after the last one.
func (r *Reader) Next() (brick.Source, error) {
	for {
		var (
			line string
			ok   bool
			err  error
		)

		if r.hasNext {
			line, ok, r.hasNext = r.pending, true, false
		} else {
			line, ok, err = r.readLine()
			if err != nil {
				return brick.Source{}, err
			}
		}

		if !ok {
			return brick.Source{}, io.EOF
		}

		if line == "" || strings.HasPrefix(line, propertyPrefix) {
			continue
		}

		b, err := parseBrick(line)
		if err != nil {
			return brick.Source{}, r.errorf("%v", err)
		}

		return b, nil
	}
}

func (r *Reader) readLine() (string, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("failed to read save line %d: %w", r.line+1, err)
		}

		return "", false, nil
	}

	r.line++

	return strings.TrimRight(r.scanner.Text(), "\r"), true, nil
}

func (r *Reader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrFormat, r.line, fmt.Sprintf(format, args...))
}

func parseLinearColor(line string) (brick.LinearColor, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return brick.LinearColor{}, fmt.Errorf("expected 4 components, got %d", len(parts))
	}

	var v [4]float32

	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return brick.LinearColor{}, fmt.Errorf("component %d: %w", i, err)
		}

		v[i] = float32(f)
	}

	return brick.LinearColor{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// brickFields is the number of space separated fields after the name.
const brickFields = 12

func parseBrick(line string) (brick.Source, error) {
	name, rest, ok := strings.Cut(line, `"`)
	if !ok {
		return brick.Source{}, fmt.Errorf("brick line without name terminator: %q", line)
	}

	fields := strings.Split(strings.TrimPrefix(rest, " "), " ")
	if len(fields) < brickFields {
		return brick.Source{}, fmt.Errorf("brick %q: expected %d fields, got %d", name, brickFields, len(fields))
	}

	p := fieldParser{name: name, fields: fields}

	b := brick.Source{
		Name: name,
		Position: [3]float32{
			p.f32(0, "x"),
			p.f32(1, "y"),
			p.f32(2, "z"),
		},
		Angle:      p.u8(3, "angle"),
		Baseplate:  p.flag(4, "baseplate"),
		ColorIndex: p.u8(5, "color"),
		Print:      fields[6],
		ColorFx:    p.u8(7, "color effect"),
		ShapeFx:    p.u8(8, "shape effect"),
		Raycasting: p.flag(9, "raycasting"),
		Collision:  p.flag(10, "collision"),
		Rendering:  p.flag(11, "rendering"),
	}

	if p.err != nil {
		return brick.Source{}, p.err
	}

	return b, nil
}

// fieldParser keeps the first conversion error of a brick line.
type fieldParser struct {
	name   string
	fields []string
	err    error
}

func (p *fieldParser) fail(field, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("brick %q: bad %s %q: %w", p.name, field, value, err)
	}
}

func (p *fieldParser) f32(i int, field string) float32 {
	f, err := strconv.ParseFloat(p.fields[i], 32)
	if err != nil {
		p.fail(field, p.fields[i], err)
	}

	return float32(f)
}

func (p *fieldParser) u8(i int, field string) uint8 {
	v, err := strconv.ParseUint(p.fields[i], 10, 8)
	if err != nil {
		p.fail(field, p.fields[i], err)
	}

	return uint8(v)
}

func (p *fieldParser) flag(i int, field string) bool {
	switch p.fields[i] {
	case "1":
		return true
	case "0":
		return false
	default:
		p.fail(field, p.fields[i], errors.New("expected 0 or 1"))
		return false
	}
}
