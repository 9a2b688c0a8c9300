package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_UnifiesLineBreaks(t *testing.T) {
	result := Normalize("first\r\nsecond\rthird")
	assert.Equal(t, "first\nsecond\nthird", result)
}

func TestNormalize_CollapsesParagraphGaps(t *testing.T) {
	result := Normalize("first\n\n\n\n\nsecond")
	assert.Equal(t, "first\n\nsecond", result)
}

func TestNormalize_CollapsesHorizontalRuns(t *testing.T) {
	result := Normalize("first\t\t  second")
	assert.Equal(t, "first second", result)
}

func TestNormalize_StripsNonPrintable(t *testing.T) {
	result := Normalize("hello\x00\x07world café")
	assert.Equal(t, "helloworld caf", result)
}

func TestNormalize_DropsPageNumberLines(t *testing.T) {
	result := Normalize("Work history\n2\nMore history\n 14 \nEnd")
	assert.Equal(t, "Work history\nMore history\nEnd", result)
}

func TestNormalize_KeepsBlankLines(t *testing.T) {
	// Blank lines separate paragraphs and must survive the numeric-line filter.
	result := Normalize("paragraph one\n\nparagraph two")
	assert.Equal(t, "paragraph one\n\nparagraph two", result)
}

func TestNormalize_KeepsLinesWithMixedContent(t *testing.T) {
	result := Normalize("2020 to 2023")
	assert.Equal(t, "2020 to 2023", result)
}

func TestNormalize_RepairsWordBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lower then upper", "JohnSmith", "John Smith"},
		{"letter then digit", "Python3", "Python 3"},
		{"digit then letter", "3years", "3 years"},
		{"already spaced", "John Smith", "John Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_TrimsSurroundingWhitespace(t *testing.T) {
	result := Normalize("  \n\ncontent here\n\n  ")
	assert.Equal(t, "content here", result)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"JohnSmith\r\n\r\n\r\nSoftware   Engineer\x00\n1\n2020to2023",
		"plain text already clean",
		"  \t mixed \r whitespace \n\n\n and café control\x01chars ",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalize_WhitespaceHeavyInputShrinks(t *testing.T) {
	input := "name\r\n\r\n\r\n\r\n\t\t\t   contact    details\n\n\n\n\nend   "
	result := Normalize(input)
	assert.Less(t, len(result), len(input))
	assert.False(t, strings.Contains(result, "\n\n\n"))
	assert.False(t, strings.Contains(result, "  "))
}
