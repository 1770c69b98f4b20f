package repurpose

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

// ExtractJSON parses raw model output into a JSON object. The text is tried
// as-is first, then once more after stripping a single markdown code fence
// (``` or ```json); models wrap JSON in fences no matter how firmly the
// prompt forbids it. Returns (nil, false) when nothing parses or the top
// level is not an object; the failure is logged, never raised.
func ExtractJSON(log *logger.Logger, raw string) (map[string]any, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		stripped := stripCodeFences(text)
		if err2 := json.Unmarshal([]byte(stripped), &parsed); err2 != nil {
			log.Warn("invalid_model_json", "stage", "fence_stripped", "error", err2.Error())
			return nil, false
		}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		log.Warn("unexpected_model_json_structure", "type", fmt.Sprintf("%T", parsed))
		return nil, false
	}
	return obj, true
}

func stripCodeFences(src string) string {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	// Drop the first fence line (``` or ```json) and the last fence line if
	// present.
	body := lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		body = lines[1 : len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}
