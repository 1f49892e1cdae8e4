package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Coordinate
	}{
		{
			name: "swaps axes and drops altitude",
			in:   "-122.1,37.4,0 -122.2,37.5,0",
			want: []Coordinate{{Lat: 37.4, Lon: -122.1}, {Lat: 37.5, Lon: -122.2}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "  \n\t ",
			want: nil,
		},
		{
			name: "invalid tokens dropped",
			in:   "bad,data abc -122.1,37.4",
			want: []Coordinate{{Lat: 37.4, Lon: -122.1}},
		},
		{
			name: "repeated spaces",
			in:   "1,2  3,4",
			want: []Coordinate{{Lat: 2, Lon: 1}, {Lat: 4, Lon: 3}},
		},
		{
			name: "wrapped across lines",
			in:   "\n  1,2,0\n  3,4,0\n",
			want: []Coordinate{{Lat: 2, Lon: 1}, {Lat: 4, Lon: 3}},
		},
		{
			name: "latitude unparsable",
			in:   "1,x 5,6",
			want: []Coordinate{{Lat: 6, Lon: 5}},
		},
		{
			name: "non-finite values dropped",
			in:   "NaN,NaN 1,Inf -Infinity,2 10,20",
			want: []Coordinate{{Lat: 20, Lon: 10}},
		},
		{
			name: "hex floats dropped",
			in:   "0x1p4,5 1,0X10 3,4",
			want: []Coordinate{{Lat: 4, Lon: 3}},
		},
		{
			name: "more than three parts dropped",
			in:   "1,2,3,4 5,6,7",
			want: []Coordinate{{Lat: 6, Lon: 5}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseCoordinates(tc.in))
		})
	}
}

func TestParseTuple(t *testing.T) {
	t.Parallel()

	c, ok := ParseTuple("10.5,-3.25,100")
	require.True(t, ok)
	assert.Equal(t, Coordinate{Lat: -3.25, Lon: 10.5}, c)

	_, ok = ParseTuple("10.5")
	assert.False(t, ok)

	_, ok = ParseTuple(",")
	assert.False(t, ok)
}

func TestFrameIgnoresNonFiniteTokens(t *testing.T) {
	t.Parallel()

	b, err := Frame(ParseCoordinates("NaN,NaN 10,20 30,40"))
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Lat: 20, Lon: 10}, b.SouthWest)
	assert.Equal(t, Coordinate{Lat: 40, Lon: 30}, b.NorthEast)
}
