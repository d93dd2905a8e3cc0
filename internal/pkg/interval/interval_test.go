package interval

import (
	"bytes"
	"errors"
	"testing"

	cbor "github.com/britram/borat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
)

//parts parses date and, if not empty, appends the parsed time.
func parts(t *testing.T, date, tm string) datepart.Parts {
	t.Helper()
	if date == "" {
		return datepart.Parts{}
	}
	d, err := datepart.ParseDate(date)
	require.NoError(t, err)
	if tm == "" {
		return d.Parts
	}
	p, err := datepart.ParseTime(tm)
	require.NoError(t, err)
	return d.Concat(p)
}

func TestMergeAndRender(t *testing.T) {
	var tests = []struct {
		start, startTime string
		end, endTime     string
		utc              bool
		diverge          int
		iso              string
		friendly         string
		roman            string
	}{
		{"2024-07-07", "", "", "", false, 3, "2024-07-07", "2024/07/07", "2024/vii/07"},
		{"2024-07-07", "", "2024-07-08", "", false, 2, "2024-07-07/08", "2024/07/07-08", "2024/vii/07-08"},
		{"2024-07-07", "", "2024-08-01", "", false, 1, "2024-07-07/08-01", "2024/07/07-08/01", "2024/vii/07-viii/01"},
		{"2023-12-31", "", "2024-01-01", "", false, 0, "2023-12-31/2024-01-01", "2023/12/31-2024/01/01", "2023/xii/31-2024/i/01"},
		{"2024", "", "2026", "", false, 0, "2024/2026", "2024-2026", "2024-2026"},
		{"2024-07", "", "2024-09", "", false, 1, "2024-07/09", "2024/07-09", "2024/vii-ix"},
		{"2024-07-07", "", "2024-07-07", "", false, 3, "2024-07-07", "2024/07/07", "2024/vii/07"},
		{"2024-07-07", "12:00", "2024-07-08", "14:00", false, 2, "2024-07-07T12:00/08T14:00", "2024/07/07 12:00-08 14:00", "2024/vii/07 12:00-08 14:00"},
		{"2024-07-07", "12:00", "2024-07-07", "14:30", false, 3, "2024-07-07T12:00/14:30", "2024/07/07 12:00-14:30", "2024/vii/07 12:00-14:30"},
		{"2024-07-07", "12:00", "2024-07-07", "12:30", false, 4, "2024-07-07T12:00/30", "2024/07/07 12:00-30", "2024/vii/07 12:00-30"},
		{"2024-07-07", "12:00:00", "2024-07-07", "12:00:00", false, 6, "2024-07-07T12:00:00", "2024/07/07 12:00:00", "2024/vii/07 12:00:00"},
		{"2024-07-07T00:00:00", "", "2024-07-08T00:00:00", "", true, 2, "2024-07-07T00:00:00/08T00:00:00Z", "2024/07/07 00:00:00-08 00:00:00", "2024/vii/07 00:00:00-08 00:00:00"},
		{"2024-07-07T00:00:00", "", "", "", true, 6, "2024-07-07T00:00:00Z", "2024/07/07 00:00:00", "2024/vii/07 00:00:00"},
	}
	for i, test := range tests {
		iv, err := Merge(parts(t, test.start, test.startTime), parts(t, test.end, test.endTime), test.utc)
		require.NoError(t, err, "%d", i)
		assert.Equal(t, test.diverge, iv.Diverge, "%d", i)
		assert.Equal(t, test.iso, iv.Render(ISO), "%d", i)
		assert.Equal(t, test.iso, iv.String(), "%d", i)
		assert.Equal(t, test.friendly, iv.Render(Friendly), "%d", i)
		assert.Equal(t, test.roman, iv.Render(Style{Slashes: true, RomanMonths: true}), "%d", i)
		assert.Equal(t, test.iso, iv.Render(Style{RomanMonths: true}), "%d: roman months need slashes", i)
	}
}

func TestMergeSingleEqualsNoEnd(t *testing.T) {
	for _, date := range []string{"2024", "2024-02", "2024-02-29", "2024-02-29T23:59:59"} {
		alone, err := Merge(parts(t, date, ""), datepart.Parts{}, false)
		require.NoError(t, err)
		same, err := Merge(parts(t, date, ""), parts(t, date, ""), false)
		require.NoError(t, err)
		assert.True(t, alone.Single(), date)
		assert.True(t, same.Single(), date)
		assert.Equal(t, alone.Render(ISO), same.Render(ISO), date)
		assert.Equal(t, alone.Render(Friendly), same.Render(Friendly), date)
		assert.Equal(t, parts(t, date, "").String(), alone.Render(ISO), date)
	}
}

func TestMergeShared(t *testing.T) {
	iv, err := Merge(parts(t, "2024-07-07", "12:00"), parts(t, "2024-07-09", "08:00"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "07"}, iv.Shared())
	assert.False(t, iv.Single())
}

func TestMergeErrors(t *testing.T) {
	var tests = []struct {
		start, startTime string
		end, endTime     string
		want             error
		errMsg           string
	}{
		{"2024-07-08", "", "2024-07-07", "", ErrEndBeforeStart, "2024-07-07 before 2024-07-08: end is before start"},
		{"2024-07-07", "14:00", "2024-07-07", "12:00", ErrEndBeforeStart, "2024-07-07T12:00 before 2024-07-07T14:00: end is before start"},
		{"2025", "", "2024", "", ErrEndBeforeStart, "2024 before 2025: end is before start"},
		{"2024-07-07", "", "2024-07", "", ErrMismatch, "2024-07-07 and 2024-07: start and end have different formats"},
		{"2024-07-07", "12:00", "2024-07-07", "12:00:00", ErrMismatch, "2024-07-07T12:00 and 2024-07-07T12:00:00: start and end have different formats"},
	}
	for i, test := range tests {
		_, err := Merge(parts(t, test.start, test.startTime), parts(t, test.end, test.endTime), false)
		require.Error(t, err, "%d", i)
		assert.True(t, errors.Is(err, test.want), "%d: %v", i, err)
		assert.Equal(t, test.errMsg, err.Error(), "%d", i)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	for i, iv := range []Interval{
		mustMerge(t, parts(t, "2024-07-07", "12:00"), parts(t, "2024-07-08", "14:00"), false),
		mustMerge(t, parts(t, "2024-07-07T00:00:00", ""), datepart.Parts{}, true),
	} {
		buf := new(bytes.Buffer)
		require.NoError(t, iv.MarshalCBOR(cbor.NewCBORWriter(buf)), "%d", i)
		m, err := cbor.NewCBORReader(buf).ReadIntMapUntagged()
		require.NoError(t, err, "%d", i)

		var decoded Interval
		require.NoError(t, decoded.UnmarshalMap(m), "%d", i)
		assert.Equal(t, iv, decoded, "%d", i)
		assert.Equal(t, iv.Render(Friendly), decoded.Render(Friendly), "%d", i)
	}
}

func TestUnmarshalMapRejects(t *testing.T) {
	var tests = []struct {
		input  map[int]interface{}
		errMsg string
	}{
		{map[int]interface{}{}, "cbor interval start: components should be an array"},
		{map[int]interface{}{1: []interface{}{"2024", 7}}, "cbor interval start: component 1 is not a string"},
		{map[int]interface{}{1: []interface{}{"2024", "13"}}, "cbor interval start: month 13 out of range [1, 12]"},
		{map[int]interface{}{1: []interface{}{"2024"}, 4: false}, "cbor interval map does not contain divergence index"},
		{map[int]interface{}{1: []interface{}{"2024"}, 3: 1}, "cbor interval map does not contain utc flag"},
		{map[int]interface{}{1: []interface{}{"2024"}, 2: []interface{}{"2025"}, 3: 1, 4: false},
			"cbor interval divergence index 1 does not match components, expected 0"},
	}
	for i, test := range tests {
		var iv Interval
		err := iv.UnmarshalMap(test.input)
		if assert.Error(t, err, "%d", i) {
			assert.Equal(t, test.errMsg, err.Error(), "%d", i)
		}
	}
}

func mustMerge(t *testing.T, start, end datepart.Parts, utc bool) Interval {
	t.Helper()
	iv, err := Merge(start, end, utc)
	require.NoError(t, err)
	return iv
}
