package table

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVInfersKinds(t *testing.T) {
	in := "time, amp1, label, stamp\n" +
		"0.0, 1.5, a, 2024-01-02 03:04:05\n" +
		"0.004, , b, 2024-01-02 03:04:06\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"time", "amp1", "label", "stamp"}, tbl.Names())
	assert.Equal(t, 2, tbl.Rows())

	kinds := make([]Kind, len(tbl.Columns))
	for i := range tbl.Columns {
		kinds[i] = tbl.Columns[i].Kind
	}
	assert.Equal(t, []Kind{Numeric, Numeric, Text, DateTime}, kinds)

	amp, ok := tbl.Column("amp1")
	require.True(t, ok)
	assert.Equal(t, 1.5, amp.Numbers[0])
	assert.True(t, math.IsNaN(amp.Numbers[1]))

	stamp, _ := tbl.Column("stamp")
	assert.Equal(t, 1.0, stamp.Times[1].Sub(stamp.Times[0]).Seconds())
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestWriteCSVRecorderFormat(t *testing.T) {
	tbl, err := RecorderTable([]float64{0, 0.004}, []float64{0.1234567, math.NaN()}, []float64{-1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t,
		"time,amp1,amp2\n"+
			"0.000000,0.123457,-1.000000\n"+
			"0.004000,,2.000000\n",
		buf.String())

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	r, err := ResolveRoles(back, "", "")
	require.NoError(t, err)
	assert.Equal(t, Roles{Time: "time", Amplitude: "amp1"}, r)
}
