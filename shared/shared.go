package shared

import (
	"math"
	"os"
	"path/filepath"
	"strings"
)

// BuildCacheKey joins key segments into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// CalculateTotalPage derives the page count for a list response.
func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// ExpandHome resolves a leading ~ in a path against the current user's home
// directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}

		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return path
}
