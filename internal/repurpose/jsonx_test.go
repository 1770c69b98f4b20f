package repurpose

import (
	"testing"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

func TestExtractJSONDirect(t *testing.T) {
	log := logger.NewNop()

	obj, ok := ExtractJSON(log, `{"posts": [{"body": "hello"}]}`)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if _, found := obj["posts"]; !found {
		t.Fatalf("expected posts key, got %v", obj)
	}
}

func TestExtractJSONFencedEqualsBare(t *testing.T) {
	log := logger.NewNop()

	bare := `{"threads": [{"tweets": ["one", "two"]}]}`
	fenced := "```json\n" + bare + "\n```"

	bareObj, ok := ExtractJSON(log, bare)
	if !ok {
		t.Fatalf("bare parse failed")
	}
	fencedObj, ok := ExtractJSON(log, fenced)
	if !ok {
		t.Fatalf("fenced parse failed")
	}
	if len(bareObj) != len(fencedObj) {
		t.Fatalf("fenced and bare payloads diverged: %v vs %v", bareObj, fencedObj)
	}
}

func TestExtractJSONRejectsNonObject(t *testing.T) {
	log := logger.NewNop()

	if _, ok := ExtractJSON(log, `[1, 2, 3]`); ok {
		t.Fatalf("expected top-level array to be rejected")
	}
	if _, ok := ExtractJSON(log, `"just a string"`); ok {
		t.Fatalf("expected top-level string to be rejected")
	}
}

func TestExtractJSONGarbage(t *testing.T) {
	log := logger.NewNop()

	if _, ok := ExtractJSON(log, "here are your posts: 1) ..."); ok {
		t.Fatalf("expected prose to fail")
	}
	if _, ok := ExtractJSON(log, ""); ok {
		t.Fatalf("expected empty input to fail")
	}
	if _, ok := ExtractJSON(log, "   \n\t "); ok {
		t.Fatalf("expected whitespace input to fail")
	}
}

func TestStripCodeFences(t *testing.T) {
	got := stripCodeFences("```json\n{\"a\": 1}\n```")
	if got != `{"a": 1}` {
		t.Fatalf("unexpected strip result: %q", got)
	}

	// No fence: untouched.
	got = stripCodeFences(`{"a": 1}`)
	if got != `{"a": 1}` {
		t.Fatalf("unfenced input should pass through, got %q", got)
	}

	// Fence without closing line still drops the opener.
	got = stripCodeFences("```\n{\"a\": 1}")
	if got != `{"a": 1}` {
		t.Fatalf("unclosed fence not handled: %q", got)
	}
}
