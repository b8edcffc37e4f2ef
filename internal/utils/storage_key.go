package utils

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// StorageKeyFromURL returns the object key a public URL points at: its last
// path segment. url.Parse already unescapes the path. Empty when nothing
// usable is left.
func StorageKeyFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	seg := path.Base(u.Path)
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}

// ObjectKey builds "<prefix><name>-<unixms>-<file>" with path separators stripped.
func ObjectKey(prefix, name, filename string, now time.Time) string {
	return fmt.Sprintf("%s%s-%d-%s", prefix, sanitizeKeyPart(name), now.UnixMilli(), sanitizeKeyPart(filepath.Base(filename)))
}

func sanitizeKeyPart(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("/", "_", "\\", "_").Replace(s)
	if s == "" || s == "." || s == ".." {
		return "file"
	}
	return s
}
