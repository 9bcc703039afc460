package advisor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type columnReply struct {
	Column *int `json:"column"`
}

// ParseColumn extracts the chosen column from a model reply. Strict
// JSON ({"column": N}) is tried first, including JSON embedded in
// surrounding prose or code fences; a bare integer anywhere in the
// reply is the last resort. Range checking is the caller's job.
func ParseColumn(reply string) (int, error) {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return -1, fmt.Errorf("empty reply")
	}

	// whole reply as JSON
	var cr columnReply
	if err := json.Unmarshal([]byte(trimmed), &cr); err == nil && cr.Column != nil {
		return *cr.Column, nil
	}

	// JSON object embedded in prose or a code fence
	if start := strings.Index(trimmed, "{"); start != -1 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			cr = columnReply{}
			if err := json.Unmarshal([]byte(trimmed[start:end+1]), &cr); err == nil && cr.Column != nil {
				return *cr.Column, nil
			}
		}
	}

	// first integer token in the reply
	for _, field := range strings.FieldsFunc(trimmed, func(r rune) bool {
		return (r < '0' || r > '9') && r != '-'
	}) {
		if n, err := strconv.Atoi(field); err == nil {
			return n, nil
		}
	}

	return -1, fmt.Errorf("no column in reply %q", truncate(trimmed, 80))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
