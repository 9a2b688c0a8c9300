package analysis

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema describes the shape the scoring service is steered toward.
// It is advisory: normalization never depends on the payload conforming.
const payloadSchema = `{
  "type": "object",
  "properties": {
    "overall_score": {"type": "number", "minimum": 0, "maximum": 100},
    "summary": {"type": "string"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "score": {"type": "number", "minimum": 0, "maximum": 10},
          "feedback": {"type": "array", "items": {"type": "string"}},
          "suggestions": {"type": "array", "items": {"type": "string"}},
          "strengths": {"type": "array", "items": {"type": "string"}},
          "issues": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["name", "score"]
      }
    },
    "key_findings": {
      "type": "object",
      "properties": {
        "strengths": {"type": "array", "items": {"type": "string"}},
        "major_issues": {"type": "array", "items": {"type": "string"}},
        "missing_skills": {"type": "array", "items": {"type": "string"}},
        "ats_compatibility": {"type": "number", "minimum": 0, "maximum": 10},
        "improvement_priority": {"type": "array", "items": {"type": "string"}}
      }
    },
    "job_alignment": {
      "type": "object",
      "properties": {
        "match_score": {"type": "number", "minimum": 0, "maximum": 10},
        "relevant_experience": {"type": "array", "items": {"type": "string"}},
        "skill_gaps": {"type": "array", "items": {"type": "string"}},
        "recommendations": {"type": "array", "items": {"type": "string"}}
      }
    }
  },
  "required": ["overall_score", "summary", "sections"]
}`

// CheckPayloadShape validates the raw payload against the steering schema and
// returns a human-readable problem list. An empty result means the payload
// conforms. Schema deviations are reported for logging, never raised: the
// normalizer is the component that deals with them.
func CheckPayloadShape(rawJSON string) []string {
	schemaLoader := gojsonschema.NewStringLoader(payloadSchema)
	documentLoader := gojsonschema.NewStringLoader(rawJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("payload is not valid JSON: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return problems
}
