package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bls2brs/internal/brick"
)

func TestParseSingleAndList(t *testing.T) {
	data := []byte(`
bricks:
  "Window": {asset: B_Window, direction: "z-", color: [1, 2, 3]}
  "Two":
    - {asset: A, size: [5, 5, 6], offset: [0, 0, -6], rotation: 6}
    - {asset: B, deferred: true, nocollide: true}
`)

	f, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)

	literals, err := f.Literals()
	require.NoError(t, err)
	require.Len(t, literals, 2)

	window := literals["Window"]
	require.Len(t, window, 1)
	assert.Equal(t, "B_Window", window[0].Asset)
	assert.Equal(t, uint8(1), window[0].RotationOffset)
	require.NotNil(t, window[0].Direction)
	assert.Equal(t, brick.ZNegative, *window[0].Direction)
	require.NotNil(t, window[0].Color)
	assert.Equal(t, brick.RGBA(1, 2, 3, 255), *window[0].Color)

	two := literals["Two"]
	require.Len(t, two, 2)
	assert.Equal(t, [3]uint32{5, 5, 6}, two[0].Size)
	assert.Equal(t, [3]int32{0, 0, -6}, two[0].Offset)
	assert.Equal(t, uint8(2), two[0].RotationOffset)
	assert.True(t, two[1].Deferred)
	assert.True(t, two[1].NoCollide)
	assert.Nil(t, two[1].Color)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "version",
			data: "version: \"2\"\nbricks: {}\n",
			want: "unsupported rule file version",
		},
		{
			name: "color components",
			data: "bricks:\n  X: {asset: A, color: [1, 2]}\n",
			want: "color needs 3 or 4 components",
		},
		{
			name: "color range",
			data: "bricks:\n  X: {asset: A, color: [1, 2, 300]}\n",
			want: "color",
		},
		{
			name: "scalar entry",
			data: "bricks:\n  X: A\n",
			want: "expected descriptor",
		},
		{
			name: "malformed",
			data: "bricks: [",
			want: "failed to parse rule YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()

			err := r.Load([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLiteralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing asset", "bricks:\n  X: {size: [1, 1, 1]}\n", "asset is required"},
		{"bad direction", "bricks:\n  X: {asset: A, direction: up}\n", "up"},
		{"empty list", "bricks:\n  X: []\n", "no descriptors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data))
			require.NoError(t, err)

			_, err = f.Literals()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadIsAtomic(t *testing.T) {
	r := NewRegistry()
	r.AddLiteral("Keep", brick.New("Kept"))

	err := r.Load([]byte(`
bricks:
  "Good": {asset: G}
  "Bad": {size: [1, 1, 1]}
`))
	require.Error(t, err)
	assert.Equal(t, []string{"Keep"}, r.Names())
}

func TestLoadOverridesExisting(t *testing.T) {
	r := NewRegistry()
	r.AddLiteral("4x4", brick.New("Old"))

	require.NoError(t, r.Load([]byte("bricks:\n  \"4x4\": {asset: New}\n")))

	res, err := r.Resolve(source("4x4"))
	require.NoError(t, err)
	assert.Equal(t, "New", res.Descriptors[0].Asset)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bricks:\n  Custom: {asset: C}\n"), 0o600))

	r := NewRegistry()
	require.NoError(t, r.LoadFile(path))
	assert.True(t, r.Has("Custom"))

	err := r.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rule file")
}

func TestMarshalRoundTrip(t *testing.T) {
	rot := uint8(0)
	color := RGBA(brick.RGBA(10, 20, 30, 40))

	f := &File{
		Version: "1",
		Bricks: map[string]EntryList{
			"X": {{Asset: "A", Size: [3]uint32{1, 2, 3}, Rotation: &rot, Color: &color, Direction: "x-"}},
		},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "color: [10, 20, 30, 40]")

	back, err := Parse(data)
	require.NoError(t, err)

	literals, err := back.Literals()
	require.NoError(t, err)

	d := literals["X"][0]
	assert.Equal(t, uint8(0), d.RotationOffset)
	assert.Equal(t, brick.XNegative, *d.Direction)
	assert.Equal(t, brick.RGBA(10, 20, 30, 40), *d.Color)
}

func TestDefaultLiterals(t *testing.T) {
	r := defaultRegistry(t)

	for _, name := range []string{"Castle Wall", "P Bar 4x", "House Door", "32x32 Road", "1x1 Cone"} {
		assert.True(t, r.Has(name), name)
	}

	door, err := r.Resolve(source("House Door"))
	require.NoError(t, err)
	assert.Len(t, door.Descriptors, 7)

	road, err := r.Resolve(source("32x32 Road"))
	require.NoError(t, err)

	colored := 0
	for _, d := range road.Descriptors {
		if d.Color != nil {
			colored++
		}
	}

	assert.Positive(t, colored)
}

func TestDefaultLiteralTable(t *testing.T) {
	r := defaultRegistry(t)

	assert.Len(t, r.Names(), 241)

	tests := []struct {
		name     string
		asset    string
		size     [3]uint32
		offset   [3]int32
		deferred bool
	}{
		{name: "P Bar 4x", asset: "PB_DefaultMicroBrick", size: [3]uint32{5, 20, 2}, offset: [3]int32{0, 0, -10}},
		{name: "1F 1x1F Vertical Print", asset: "PB_DefaultMicroBrick", size: [3]uint32{2, 2, 2}, offset: [3]int32{3, 3, 0}},
		{name: "16x Cube 1/8h", asset: "PB_DefaultMicroBrick", size: [3]uint32{80, 80, 10}},
		{name: "0.5x1F No Overlap", asset: "PB_DefaultMicroBrick", size: [3]uint32{5, 2, 2}, offset: [3]int32{3, 0, 0}, deferred: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(source(tt.name))
			require.NoError(t, err)
			assert.Equal(t, LiteralRule, res.Rule)

			d := res.Descriptors[0]
			assert.Equal(t, tt.asset, d.Asset)
			assert.Equal(t, tt.size, d.Size)
			assert.Equal(t, tt.offset, d.Offset)
			assert.Equal(t, tt.deferred, d.Deferred)
		})
	}
}
