package adjacency

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/postnav/internal/logger"
)

func TestIntVal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"5", 5},
		{" 7", 7},
		{"12abc", 12},
		{"-3", -3},
		{"+4", 4},
		{"abc", 0},
		{"", 0},
		{"  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IntVal(tt.in))
		})
	}
}

func TestParseTermList_Comma(t *testing.T) {
	assert.Equal(t, []int64{3, 5, 8}, ParseTermList("3,5,8"))
	assert.Equal(t, []int64{3, 5}, ParseTermList("3, 5"))
}

func TestParseTermList_Empty(t *testing.T) {
	assert.Nil(t, ParseTermList(""))
	assert.Nil(t, ParseTermList("   "))
}

func TestParseTermList_NonNumericCoercesToZero(t *testing.T) {
	assert.Equal(t, []int64{3, 0, 0}, ParseTermList("3,news,"))
}

func TestParseTermList_LegacyAndSeparator(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	ids := ParseTermList("5 and 7")

	assert.Equal(t, []int64{5, 7}, ids)
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "deprecated")
}

func TestNormalizeExcluded_MergesAndDedupes(t *testing.T) {
	got := NormalizeExcluded([]int64{4, 2}, "2,9")
	assert.Equal(t, []int64{4, 2, 9}, got)
}

func TestNormalizeExcluded_LegacyMatchesComma(t *testing.T) {
	assert.Equal(t, NormalizeExcluded(nil, "5,7"), NormalizeExcluded(nil, "5 and 7"))
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, []int64{1, 3}, Subtract([]int64{1, 2, 3}, []int64{2}))
	assert.Equal(t, []int64{}, Subtract([]int64{2}, []int64{2}))
	assert.Nil(t, Subtract(nil, []int64{2}))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "1,2,3", joinIDs([]int64{1, 2, 3}))
	assert.Equal(t, "NULL", joinIDs(nil))
}
