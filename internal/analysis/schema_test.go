package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPayloadShape_ConformingPayload(t *testing.T) {
	payload := `{
		"overall_score": 75,
		"summary": "Good resume.",
		"sections": [{"name": "Experience", "score": 8}]
	}`

	assert.Empty(t, CheckPayloadShape(payload))
}

func TestCheckPayloadShape_ReportsDeviations(t *testing.T) {
	payload := `{"overall_score": "eighty", "sections": {}}`

	problems := CheckPayloadShape(payload)
	assert.NotEmpty(t, problems)
}

func TestCheckPayloadShape_InvalidJSON(t *testing.T) {
	problems := CheckPayloadShape("not json at all")
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "not valid JSON")
}
