package repurpose

import (
	"strings"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

const (
	tweetMaxRunes       = 280
	instagramMaxRunes   = 2200
	instagramMaxTags    = 5
	instagramMaxResults = 3
	seoMaxResults       = 3
)

// batchPolicy describes how one platform's raw JSON payload becomes typed
// variants: which key holds the list, how many survive, and how a single
// object converts. The item func returns ok=false to skip an entry; skipped
// entries still consume their position, so IDs reflect where the model put
// each item, not how many survived before it.
type batchPolicy[T any] struct {
	platform string
	listKey  string
	maxItems int // 0 means unbounded
	item     func(obj map[string]any, ordinal int) (T, bool)
}

func normalizeBatch[T any](log *logger.Logger, parsed map[string]any, pol batchPolicy[T]) []T {
	raw, ok := parsed[pol.listKey].([]any)
	if !ok {
		log.Warn("missing_variant_list", "platform", pol.platform, "key", pol.listKey)
		return []T{}
	}

	out := make([]T, 0, len(raw))
	for i, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			log.Warn("skipping_non_object_variant", "platform", pol.platform, "position", i+1)
			continue
		}
		item, ok := pol.item(obj, i+1)
		if !ok {
			continue
		}
		out = append(out, item)
	}

	if pol.maxItems > 0 && len(out) > pol.maxItems {
		out = out[:pol.maxItems]
	}
	return out
}

// stringField returns the first key in keys whose value is a non-empty
// string after trimming.
func stringField(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

// stringList coerces a value into a list of trimmed non-empty strings. A
// plain string is split on whitespace; anything else yields nil.
func stringList(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	case string:
		return strings.Fields(val)
	default:
		return nil
	}
}

func normalizeLinkedInPosts(log *logger.Logger, parsed map[string]any) []LinkedInPost {
	return normalizeBatch(log, parsed, batchPolicy[LinkedInPost]{
		platform: "linkedin",
		listKey:  "posts",
		item: func(obj map[string]any, ordinal int) (LinkedInPost, bool) {
			// Older prompt revisions called the field "content".
			body := stringField(obj, "body", "content")
			if body == "" {
				return LinkedInPost{}, false
			}
			return LinkedInPost{
				ID:    ordinal,
				Title: stringField(obj, "title"),
				Body:  body,
			}, true
		},
	})
}

func normalizeTwitterThreads(log *logger.Logger, parsed map[string]any) []TwitterThread {
	return normalizeBatch(log, parsed, batchPolicy[TwitterThread]{
		platform: "twitter",
		listKey:  "threads",
		item: func(obj map[string]any, ordinal int) (TwitterThread, bool) {
			// tweets must be a real list. A string here is a malformed
			// thread, not a one-tweet thread.
			raw, ok := obj["tweets"].([]any)
			if !ok {
				return TwitterThread{}, false
			}
			cleaned := make([]string, 0, len(raw))
			for _, entry := range raw {
				tweet, ok := entry.(string)
				if !ok {
					continue
				}
				if tweet = strings.TrimSpace(tweet); tweet == "" {
					continue
				}
				if runeCount(tweet) > tweetMaxRunes {
					tweet = truncateRunes(tweet, tweetMaxRunes-3) + "..."
				}
				cleaned = append(cleaned, tweet)
			}
			if len(cleaned) == 0 {
				return TwitterThread{}, false
			}
			return TwitterThread{
				ID:     ordinal,
				Title:  stringField(obj, "title"),
				Tweets: cleaned,
			}, true
		},
	})
}

func normalizeInstagramCaptions(log *logger.Logger, parsed map[string]any) []InstagramCaption {
	return normalizeBatch(log, parsed, batchPolicy[InstagramCaption]{
		platform: "instagram",
		listKey:  "captions",
		maxItems: instagramMaxResults,
		item: func(obj map[string]any, ordinal int) (InstagramCaption, bool) {
			text := stringField(obj, "text")
			if text == "" {
				return InstagramCaption{}, false
			}
			if runeCount(text) > instagramMaxRunes {
				text = strings.TrimRight(truncateRunes(text, instagramMaxRunes), " \t\n")
			}

			hashtags := stringList(obj["hashtags"])
			if len(hashtags) > instagramMaxTags {
				hashtags = hashtags[:instagramMaxTags]
			}

			style := stringField(obj, "style")
			if style == "" {
				style = "default"
			}

			return InstagramCaption{
				ID:             ordinal,
				Style:          style,
				Text:           text,
				Hashtags:       hashtags,
				CharacterCount: runeCount(text),
			}, true
		},
	})
}

func normalizeSEOMetas(log *logger.Logger, parsed map[string]any, primaryKeyword string) []SEOMeta {
	return normalizeBatch(log, parsed, batchPolicy[SEOMeta]{
		platform: "seo",
		listKey:  "metas",
		maxItems: seoMaxResults,
		item: func(obj map[string]any, ordinal int) (SEOMeta, bool) {
			description := stringField(obj, "description")
			if description == "" {
				return SEOMeta{}, false
			}
			return SEOMeta{
				ID:             ordinal,
				Description:    description,
				CharacterCount: runeCount(description),
				PrimaryKeyword: primaryKeyword,
			}, true
		},
	})
}
