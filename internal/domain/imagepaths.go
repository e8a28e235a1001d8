package domain

import "strings"

// imagePathSeparator joins image paths in the persisted column.
// A path that itself contains the separator does not survive a round trip.
const imagePathSeparator = ","

// JoinImagePaths encodes an ordered path list for storage.
func JoinImagePaths(paths []string) string {
	return strings.Join(paths, imagePathSeparator)
}

// SplitImagePaths decodes the stored form. An empty string yields an empty,
// non-nil list; empty segments between separators are kept.
func SplitImagePaths(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, imagePathSeparator)
}

// HasSeparator reports whether path would corrupt the joined encoding.
func HasSeparator(path string) bool {
	return strings.Contains(path, imagePathSeparator)
}
