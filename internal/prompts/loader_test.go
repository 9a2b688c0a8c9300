package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedPrompts(t *testing.T) {
	system, err := Get("analysis.json", "system")
	require.NoError(t, err)
	assert.NotEmpty(t, system)

	user, err := Get("analysis.json", "analyze-resume")
	require.NoError(t, err)
	assert.Contains(t, user, "{{.JobContext}}")
	assert.Contains(t, user, "{{.ResumeText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("analysis.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("analysis.json", "no-such-prompt") })
}

func TestFormat(t *testing.T) {
	result := Format("role: {{.Role}}, text: {{.Text}}", map[string]string{
		"Role": "Engineer",
		"Text": "resume body",
	})
	assert.Equal(t, "role: Engineer, text: resume body", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "hello {{.Name}}", result)
}
