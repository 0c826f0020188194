package worldcup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daap14/wcdash/internal/worldcup"
)

func TestParseYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{}},
		{"single", "2010", []int{2010}},
		{"comma separated", "1958, 1962, 1970", []int{1958, 1962, 1970}},
		{"no spaces", "1974,1978", []int{1974, 1978}},
		{"surrounding whitespace", "  1998 ,\t2018  ", []int{1998, 2018}},
		{"unsorted input", "2002, 1994", []int{1994, 2002}},
		{"duplicates collapse", "1930, 1930", []int{1930}},
		{"non-numeric tokens skipped", "1930, TBD, 19x0, -1950, 1954", []int{1930, 1954}},
		{"empty tokens skipped", "1934,, ,1938,", []int{1934, 1938}},
		{"only garbage", "n/a", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := worldcup.ParseYears(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRecords_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := worldcup.DecodeRecords([]byte("- team: Brazil\n  iso: BRA\n  titles: 5\n"))
	assert.Error(t, err)
}

func TestDecodeRecords_KeepsFreeTextYears(t *testing.T) {
	t.Parallel()

	records, err := worldcup.DecodeRecords([]byte(`- team: Spain
  iso: ESP
  wins: 1
  runnersUp: 0
  yearsWon: "2010"
  yearsRunnersUp: ""
`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Spain", records[0].Team)
	assert.Equal(t, "2010", records[0].YearsWon)
	assert.Equal(t, "", records[0].YearsRunnersUp)
}
