package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"resume-builder/internal/domain"
)

// listKeys are the top-level keys holding ordered entries.
var listKeys = []string{"experiences", "education", "skills", "projects"}

// Normalize rewrites the tolerated legacy shapes of a decoded resume into
// the canonical one, in place, and returns m:
//   - missing or null lists become empty lists and a missing personalInfo
//     becomes an empty object;
//   - skills stored as plain strings (or one comma-separated string) become
//     leveled records at the default level;
//   - skill levels that are fractional or numeric text are truncated to an
//     integer; any other non-numeric level becomes the default level;
//   - entries without a usable id, or whose id repeats an earlier one in the
//     same list, get a fresh id from newID.
func Normalize(m map[string]interface{}, newID func() string) map[string]interface{} {
	if m == nil {
		m = map[string]interface{}{}
	}
	if pi, ok := m["personalInfo"]; !ok || pi == nil {
		m["personalInfo"] = map[string]interface{}{}
	}

	for _, k := range listKeys {
		switch t := m[k].(type) {
		case nil:
			m[k] = []interface{}{}
		case string:
			if k == "skills" {
				m[k] = skillsFromStrings([]interface{}{t}, newID)
			}
		case []interface{}:
			if k == "skills" {
				m[k] = skillsFromStrings(t, newID)
			}
		}
	}

	if skills, ok := m["skills"].([]interface{}); ok {
		for _, it := range skills {
			if entry, ok := it.(map[string]interface{}); ok {
				if lv, present := entry["level"]; present && lv != nil {
					entry["level"] = levelNumber(lv)
				}
			}
		}
	}

	for _, k := range listKeys {
		if arr, ok := m[k].([]interface{}); ok {
			ensureIDs(arr, newID)
		}
	}
	return m
}

func levelNumber(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.Abs(t) > math.MaxInt32 {
			return float64(domain.DefaultLevel)
		}
		return math.Trunc(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return float64(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return levelNumber(f)
		}
	}
	return float64(domain.DefaultLevel)
}

// skillsFromStrings keeps record-shaped items and expands string items.
func skillsFromStrings(items []interface{}, newID func() string) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			out = append(out, it)
			continue
		}
		for _, name := range strings.Split(s, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out = append(out, map[string]interface{}{
				"id":    newID(),
				"name":  name,
				"level": float64(domain.DefaultLevel),
			})
		}
	}
	return out
}

func ensureIDs(arr []interface{}, newID func() string) {
	seen := make(map[string]struct{}, len(arr))
	for _, it := range arr {
		entry, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		id := idString(entry["id"])
		if _, dup := seen[id]; id == "" || dup {
			id = newID()
		}
		entry["id"] = id
		seen[id] = struct{}{}
	}
}

// idString accepts the numeric ids older exports produced from timestamps.
func idString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
