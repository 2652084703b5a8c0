package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"deckplan/internal/httpx"
)

// ErrMalformedResponse is returned when no JSON document could be recovered
// from the model output, even after fence stripping, brace-span slicing, and
// automatic repair. The caller decides whether this is fatal (primary
// generation) or ignorable (auxiliary calls).
var ErrMalformedResponse = errors.New("malformed model response")

// fencedBlockPattern matches a markdown code fence, optionally tagged "json",
// capturing the inner content. (?s) lets the body span multiple lines.
var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON recovers a single JSON object from arbitrary model output and
// returns it as a generic map. The input may be wrapped in prose, markdown
// code fences, or both; nil-ish input (empty or whitespace-only) is treated
// as "{}".
//
// The recovery pipeline:
//  1. If the text contains a fenced code block, replace the text with the
//     block's inner content.
//  2. Slice from the first '{' to the last '}' when both exist in order.
//  3. Parse as JSON; on failure, repair with jsonrepair and retry.
//
// The function is deterministic and side-effect free. Failures wrap
// [ErrMalformedResponse].
func ExtractJSON(raw string) (map[string]any, error) {
	return ExtractAs[map[string]any](raw)
}

// ExtractAs recovers a JSON document from raw model output and unmarshals it
// into T, applying the same recovery pipeline as [ExtractJSON]. It is used
// for auxiliary payloads with a known shape (design systems, polish results).
func ExtractAs[T any](raw string) (T, error) {
	var result T

	candidate := normalize(raw)

	err := json.Unmarshal([]byte(candidate), &result)
	if err == nil {
		return result, nil
	}

	// Strict parsing failed; attempt automatic repair and retry. This recovers
	// truncated streams, single-quoted keys, trailing commas, and similar
	// model-induced damage.
	repaired, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return result, fmt.Errorf("%w: %v (repair also failed: %v, raw: %s)",
			ErrMalformedResponse, err, repairErr, httpx.TruncateStringDefault(raw))
	}

	if err = json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("%w: %v (raw: %s)",
			ErrMalformedResponse, err, httpx.TruncateStringDefault(raw))
	}

	return result, nil
}

// ExtractText trims model output intended as a plain string result (e.g. a
// visual prompt suggestion), stripping any stray code fences.
func ExtractText(raw string) string {
	text := raw
	if match := fencedBlockPattern.FindStringSubmatch(text); match != nil {
		text = match[1]
	}
	return strings.TrimSpace(text)
}

// normalize applies fence stripping and brace-span slicing, producing the
// best candidate JSON text for parsing. It never fails; parse errors are
// detected by the caller.
func normalize(raw string) string {
	text := raw
	if strings.TrimSpace(text) == "" {
		return "{}"
	}

	// Prefer the inside of a fenced code block when one is present.
	if match := fencedBlockPattern.FindStringSubmatch(text); match != nil {
		text = match[1]
	}

	// Slice to the outermost brace pair. This recovers JSON surrounded by
	// prose even when fences are missing or only partially emitted.
	firstBrace := strings.Index(text, "{")
	lastBrace := strings.LastIndex(text, "}")
	if firstBrace != -1 && lastBrace != -1 && lastBrace > firstBrace {
		text = text[firstBrace : lastBrace+1]
	}

	return text
}
