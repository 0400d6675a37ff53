package switcher

import (
	"strings"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
)

// Switch replaces the leading locale segment of currentPath with target and keeps
// the rest of the path unchanged. The result is not checked for existence.
//
// "/en/docs/installation" -> "/pt/docs/installation", "/en" -> "/pt".
func Switch(currentPath string, target locale.Code) string {
	segments := strings.Split(currentPath, "/")
	if len(segments) < 2 {
		// No slash at all: treat the whole string as the locale segment.
		return "/" + target.String()
	}
	segments[1] = target.String()
	return strings.Join(segments, "/")
}
