package driver

import (
	"bytes"
	"fmt"
	"regexp"
	"sync"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/tidwall/gjson"
)

type recordFn func(record types.Record) error

var symbolPatterns sync.Map // path suffix -> *regexp.Regexp

// symbolPattern matches the path segment between "symbols/" and the
// stream's endpoint suffix in a resolved request URL.
func symbolPattern(suffix string) *regexp.Regexp {
	if cached, found := symbolPatterns.Load(suffix); found {
		return cached.(*regexp.Regexp)
	}

	pattern := regexp.MustCompile(`symbols/(\w+)/` + regexp.QuoteMeta(suffix))
	symbolPatterns.Store(suffix, pattern)
	return pattern
}

// parseResponse extracts the top-level array from body and hands each item
// to fn after enrichment. For child streams the symbol is re-derived from
// the request path, never trusted from the body; a path that does not match
// the expected shape is a contract break, not a transient fault.
func parseResponse(stream *types.Stream, requestURL string, body []byte, fn recordFn) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("unparseable response body from %s", requestURL)
	}

	parsed := gjson.ParseBytes(body)
	if parsed.Type == gjson.Null {
		return nil
	}
	if !parsed.IsArray() {
		return fmt.Errorf("expected array response from %s", requestURL)
	}

	symbol := ""
	if stream.Parent != "" {
		match := symbolPattern(stream.PathSuffix()).FindStringSubmatch(requestURL)
		if match == nil {
			return fmt.Errorf("unable to extract symbol from request path %s", requestURL)
		}
		symbol = match[1]
	}

	for _, item := range parsed.Array() {
		fields, ok := item.Value().(map[string]any)
		if !ok {
			return fmt.Errorf("expected object items in response from %s", requestURL)
		}

		record := types.Record(fields)
		if symbol != "" {
			record[constants.SymbolField] = symbol
		}
		if err := fn(record); err != nil {
			return err
		}
	}

	return nil
}
