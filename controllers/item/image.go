package itemControllers

import "strings"

// NormalizeImagePath keeps absolute http(s) URLs as-is and forces anything
// else to a root-relative path. Empty input stays empty (image optional).
func NormalizeImagePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return "/" + strings.TrimLeft(path, "/")
}
