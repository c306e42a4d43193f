package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"fixed", Fixed, false},
		{"Fixed", Fixed, false},
		{" growing ", Growing, false},
		{"grow", Growing, false},
		{"maxrects", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, name string) Mode {
	t.Helper()
	m, err := ParseMode(name)
	require.NoError(t, err)
	return m
}

func TestModeText(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("growing")))
	assert.Equal(t, Growing, m)

	text, err := Fixed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fixed", string(text))

	_, err = Mode(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Error(t, m.UnmarshalText([]byte("diagonal")))
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestNew(t *testing.T) {
	f, err := New(Fixed, 64, 32)
	require.NoError(t, err)
	assert.IsType(t, &Packer{}, f)
	assert.Equal(t, NewSize(64, 32), f.Bounds())

	g, err := New(Growing, 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &GrowingPacker{}, g)

	f, err = New(Fixed, 0, 32)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, f)

	_, err = New(Mode(7), 1, 1)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseSort(t *testing.T) {
	for _, name := range []string{"area", "perimeter", "diff", "minside", "maxside", "height", "width", "ratio", "MaxSide"} {
		fn, err := ParseSort(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn, name)
	}
	fn, err := ParseSort("none")
	require.NoError(t, err)
	assert.Nil(t, fn)

	_, err = ParseSort("random")
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestSorted(t *testing.T) {
	sizes := []Size{NewSizeID(0, 2, 9), NewSizeID(1, 5, 5), NewSizeID(2, 9, 1), NewSizeID(3, 3, 3)}

	byMax := Sorted(sizes, SortMaxSide)
	assert.Equal(t, []int{0, 2, 1, 3}, ids(byMax))
	byArea := Sorted(sizes, SortArea)
	assert.Equal(t, []int{1, 0, 2, 3}, ids(byArea))
	byHeight := Sorted(sizes, SortHeight)
	assert.Equal(t, []int{0, 1, 3, 2}, ids(byHeight))

	// Input untouched; nil compare keeps order.
	assert.Equal(t, []int{0, 1, 2, 3}, ids(sizes))
	assert.Equal(t, []int{0, 1, 2, 3}, ids(Sorted(sizes, nil)))
}

func ids(sizes []Size) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = s.ID
	}
	return out
}

func TestPadding(t *testing.T) {
	const padding = 2
	bounds := PaddedBounds(20, 20, padding)
	assert.Equal(t, NewSize(18, 18), bounds)
	fixed, err := NewPacker(bounds.Width, bounds.Height)
	require.NoError(t, err)

	sizes := []Size{NewSize(8, 8), NewSize(6, 6)}
	padded := make([]Size, len(sizes))
	for i, s := range sizes {
		padded[i] = PadSize(s, padding)
	}
	got := fixed.Fit(padded...)
	a := UnpadRect(got[0].Rect, padding)
	b := UnpadRect(got[1].Rect, padding)

	assert.Equal(t, NewRect(2, 2, 8, 8), a)
	assert.Equal(t, NewRect(12, 2, 6, 6), b)
	assert.False(t, a.Intersects(b))
	assert.Equal(t, padding, b.X-a.Right())
	assert.LessOrEqual(t, b.Right()+padding, 20)

	assert.Equal(t, NewSize(3, 4), PadSize(NewSize(3, 4), 0))
	assert.Equal(t, NewRect(1, 1, 3, 3), UnpadRect(NewRect(1, 1, 3, 3), -1))
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Bottom())
	assert.True(t, r.Contains(2, 3))
	assert.False(t, r.Contains(6, 3))
	assert.True(t, r.Intersects(NewRect(5, 7, 1, 1)))
	assert.False(t, r.Intersects(NewRect(6, 3, 1, 1)))
	assert.Equal(t, NewRect(0, 0, 6, 8), r.Union(NewRect(0, 0, 1, 1)))
	assert.True(t, NewRect(0, 0, 0, 3).IsEmpty())
	assert.Equal(t, "[2, 3, 4, 5]", r.String())
	assert.False(t, NewSize(0, 1).Valid())
	assert.Zero(t, NewSize(3, 0).Ratio())
}
