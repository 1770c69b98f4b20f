package repurpose

import (
	"strings"
	"testing"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

func TestNormalizeLinkedInBodyFallback(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"posts": []any{
			map[string]any{"title": "A", "body": "body wins", "content": "ignored"},
			map[string]any{"title": "B", "content": "legacy field"},
			map[string]any{"title": "C"},
		},
	}

	posts := normalizeLinkedInPosts(log, parsed)
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Body != "body wins" {
		t.Fatalf("body should take precedence over content, got %q", posts[0].Body)
	}
	if posts[1].Body != "legacy field" {
		t.Fatalf("content fallback failed, got %q", posts[1].Body)
	}
	// The empty third item was skipped but the second keeps its input position.
	if posts[0].ID != 1 || posts[1].ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", posts[0].ID, posts[1].ID)
	}
}

func TestNormalizeLinkedInSkipsNonObjects(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"posts": []any{
			"not an object",
			map[string]any{"body": "valid"},
		},
	}

	posts := normalizeLinkedInPosts(log, parsed)
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].ID != 2 {
		t.Fatalf("skipped entries must still consume ordinals, got id %d", posts[0].ID)
	}
}

func TestNormalizeTwitterTruncatesLongTweets(t *testing.T) {
	log := logger.NewNop()

	long := strings.Repeat("x", 300)
	parsed := map[string]any{
		"threads": []any{
			map[string]any{"title": "t1", "tweets": []any{long, "short"}},
			map[string]any{"tweets": []any{}},
		},
	}

	threads := normalizeTwitterThreads(log, parsed)
	if len(threads) != 1 {
		t.Fatalf("expected 1 thread (empty one dropped), got %d", len(threads))
	}
	got := threads[0].Tweets[0]
	if len([]rune(got)) != 280 {
		t.Fatalf("expected truncated tweet of 280 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated tweet must end with ellipsis, got %q", got[len(got)-10:])
	}
	if threads[0].Tweets[1] != "short" {
		t.Fatalf("short tweet must pass through unchanged")
	}
}

func TestNormalizeTwitterDropsStringTweets(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"threads": []any{
			map[string]any{"title": "bad", "tweets": "this is one single malformed tweet payload"},
			map[string]any{"title": "good", "tweets": []any{"a real tweet", "another"}},
		},
	}

	threads := normalizeTwitterThreads(log, parsed)
	if len(threads) != 1 {
		t.Fatalf("string-valued tweets must drop the thread, got %d threads", len(threads))
	}
	if threads[0].Title != "good" {
		t.Fatalf("wrong thread survived: %+v", threads[0])
	}
	// The dropped thread still consumed its input position.
	if threads[0].ID != 2 {
		t.Fatalf("expected id 2, got %d", threads[0].ID)
	}
}

func TestNormalizeTwitterSkipsNonStringTweetEntries(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"threads": []any{
			map[string]any{"tweets": []any{"keep", 42, "", "  ", "also keep"}},
		},
	}

	threads := normalizeTwitterThreads(log, parsed)
	if len(threads) != 1 {
		t.Fatalf("expected 1 thread, got %d", len(threads))
	}
	if len(threads[0].Tweets) != 2 || threads[0].Tweets[1] != "also keep" {
		t.Fatalf("unexpected tweets: %v", threads[0].Tweets)
	}
}

func TestNormalizeInstagramCaps(t *testing.T) {
	log := logger.NewNop()

	longText := strings.Repeat("a", 2300)
	parsed := map[string]any{
		"captions": []any{
			map[string]any{
				"text":     longText,
				"hashtags": []any{"#a", "#b", "#c", "#d", "#e", "#f", "#g"},
			},
			map[string]any{"text": "two", "style": "punchy", "hashtags": "#x #y #z"},
			map[string]any{"text": "three"},
			map[string]any{"text": "four"},
		},
	}

	caps := normalizeInstagramCaptions(log, parsed)
	if len(caps) != 3 {
		t.Fatalf("expected cap at 3 variants, got %d", len(caps))
	}

	if n := len([]rune(caps[0].Text)); n != 2200 {
		t.Fatalf("expected text truncated to 2200 runes, got %d", n)
	}
	if caps[0].CharacterCount != len([]rune(caps[0].Text)) {
		t.Fatalf("character_count must be computed after truncation")
	}
	if len(caps[0].Hashtags) != 5 {
		t.Fatalf("expected 5 hashtags, got %d", len(caps[0].Hashtags))
	}
	if caps[0].Hashtags[4] != "#e" {
		t.Fatalf("hashtags must keep original order, got %v", caps[0].Hashtags)
	}
	if caps[0].Style != "default" {
		t.Fatalf("missing style must default, got %q", caps[0].Style)
	}

	// Whitespace-delimited hashtag string is normalized to a list.
	if len(caps[1].Hashtags) != 3 || caps[1].Hashtags[0] != "#x" {
		t.Fatalf("string hashtags not normalized: %v", caps[1].Hashtags)
	}
	if caps[1].Style != "punchy" {
		t.Fatalf("explicit style must be kept, got %q", caps[1].Style)
	}
}

func TestNormalizeInstagramTrimsTrailingWhitespaceAfterTruncation(t *testing.T) {
	log := logger.NewNop()

	// Rune 2200 lands inside a run of spaces; they must be trimmed off.
	text := strings.Repeat("b", 2195) + strings.Repeat(" ", 20) + "tail"
	parsed := map[string]any{
		"captions": []any{map[string]any{"text": text}},
	}

	caps := normalizeInstagramCaptions(log, parsed)
	if len(caps) != 1 {
		t.Fatalf("expected 1 caption, got %d", len(caps))
	}
	if strings.HasSuffix(caps[0].Text, " ") {
		t.Fatalf("trailing whitespace must be trimmed after truncation")
	}
	if caps[0].CharacterCount != 2195 {
		t.Fatalf("expected character_count 2195 after trim, got %d", caps[0].CharacterCount)
	}
}

func TestNormalizeSEOCapAndKeywordEcho(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"metas": []any{
			map[string]any{"description": "first", "primary_keyword": "model says this"},
			map[string]any{"description": "second"},
			map[string]any{"description": "third"},
			map[string]any{"description": "fourth"},
			map[string]any{"description": "fifth"},
		},
	}

	metas := normalizeSEOMetas(log, parsed, "caller keyword")
	if len(metas) != 3 {
		t.Fatalf("expected cap at 3 metas, got %d", len(metas))
	}
	for _, m := range metas {
		if m.PrimaryKeyword != "caller keyword" {
			t.Fatalf("primary_keyword must echo the request, got %q", m.PrimaryKeyword)
		}
	}
	if metas[0].Description != "first" || metas[2].Description != "third" {
		t.Fatalf("expected first 3 in input order, got %v", metas)
	}
	if metas[0].CharacterCount != len("first") {
		t.Fatalf("character_count mismatch: %d", metas[0].CharacterCount)
	}
}

func TestNormalizeMissingListKey(t *testing.T) {
	log := logger.NewNop()

	if got := normalizeLinkedInPosts(log, map[string]any{"wrong": []any{}}); len(got) != 0 {
		t.Fatalf("missing list key must yield empty slice, got %v", got)
	}
	if got := normalizeSEOMetas(log, map[string]any{"metas": "nope"}, "kw"); len(got) != 0 {
		t.Fatalf("non-list value must yield empty slice, got %v", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	log := logger.NewNop()

	parsed := map[string]any{
		"captions": []any{
			map[string]any{"text": strings.Repeat("c", 2300), "hashtags": []any{"#1", "#2"}},
		},
	}

	first := normalizeInstagramCaptions(log, parsed)
	second := normalizeInstagramCaptions(log, parsed)
	if first[0].Text != second[0].Text || first[0].CharacterCount != second[0].CharacterCount {
		t.Fatalf("normalization must be deterministic")
	}
}
