package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes a structured extraction task for GenerateJSON
// callers: what to pull out of the input text and the JSON shape to reply
// with.
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// SchemaField is one field of the expected JSON output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string
	Required    bool
}

// BuildExtractionPrompt renders the schema and input text into a prompt.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// SkillExtractionSchema is the extraction contract for pulling technical and
// soft skills out of resume or job text.
func SkillExtractionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Skills",
		Description: `You are an expert resume and job posting parser.
Your task is to extract every concrete skill mentioned in the text.
Report each skill as a short lowercase name (e.g., "python", "machine learning").
Do not invent skills that are not present in the text.`,
		Fields: []SchemaField{
			{
				Name:        "skills",
				Type:        `["string"]`,
				Description: "every technical or soft skill named in the text, lowercase",
				Required:    true,
			},
		},
	}
}
