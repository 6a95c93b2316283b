package trim_test

import (
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/trim"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{"nil input", nil, []string{}},
		{"empty input", []string{}, []string{}},
		{"single blank line", []string{""}, []string{}},
		{"single whitespace line", []string{"   "}, []string{}},
		{"all blank", []string{"", " ", "\t", ""}, []string{}},
		{
			"trailing space and tab only",
			[]string{"  a  ", "\tb\t", ""},
			[]string{"  a", "\tb"},
		},
		{
			"blank runs at both edges collapse, interior blanks survive",
			[]string{"", "", "x", "", "", "y", "", ""},
			[]string{"x", "", "", "y"},
		},
		{
			"lines that become blank after trimming count as blank",
			[]string{" \t", "x", "\t \t"},
			[]string{"x"},
		},
		{
			"other whitespace is payload",
			[]string{"a\r", "b ", "c\v"},
			[]string{"a\r", "b ", "c\v"},
		},
		{"untouched input", []string{"a", "b"}, []string{"a", "b"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, trim.Normalize(testCase.lines))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{},
		{"   "},
		{"", "a ", "", " b\t", "", ""},
		{"\t", "x\t\t", " ", "y", "\t"},
	}

	for _, lines := range inputs {
		once := trim.Normalize(lines)
		assert.Equal(t, once, trim.Normalize(once), "input %q", lines)
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	lines := []string{"", "a  ", ""}
	trim.Normalize(lines)

	assert.Equal(t, []string{"", "a  ", ""}, lines)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", string(trim.Join(nil)))
	assert.Equal(t, "a", string(trim.Join([]string{"a"})))
	assert.Equal(t, "a\n\nb", string(trim.Join([]string{"a", "", "b"})))
}
