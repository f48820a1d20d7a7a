package shared

import "strings"

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and its parts into a redis key, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}
