package tools

// JSON Schema builders for tool input definitions. The chat completions API
// takes plain JSON Schema objects, so these stay untyped maps.

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func limitProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "minimum": 1, "maximum": 50, "default": 10, "description": desc}
}
