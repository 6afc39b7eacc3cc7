package llm

import "strings"

// CleanJSONBlock extracts the JSON document from a raw model response.
// Models wrap structured output in ```json fences or surround it with
// conversational text even when told not to; this strips the fences and
// returns the first balanced object or array. Input without any JSON value
// is returned trimmed, so the caller's decode error stays meaningful.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = stripFences(text)
	if v := firstJSONValue(text); v != "" {
		return v
	}
	return text
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// A language tag like "json" sits alone on the opening line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		tag := text[:idx]
		if len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// firstJSONValue returns the first balanced {...} or [...] in s, skipping
// brackets inside string literals. Returns "" when none closes.
func firstJSONValue(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	open := s[start]
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
