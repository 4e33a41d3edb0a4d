// Package images resolves stored image references to fetchable URLs.
//
// A reference can be an absolute URL, a Cloudinary URL, a GridFS object id
// (24 hex characters), a legacy /images/ path or a bare filename. Resolve is
// total over string input and runs during rendering, so it must stay pure.
package images

import (
	"regexp"
	"strings"
)

const Placeholder = "/placeholder.svg"

var objectIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)

// IsGridFSRef reports whether ref looks like a GridFS object id.
func IsGridFSRef(ref string) bool {
	return objectIDPattern.MatchString(strings.ToLower(ref))
}

// Resolve maps a stored image reference to a URL the client can fetch.
// It never fails; empty input yields the placeholder asset.
func Resolve(ref string) string {
	if ref == "" {
		return Placeholder
	}

	// Cloudinary and other absolute URLs pass through untouched.
	if strings.Contains(ref, "res.cloudinary.com") {
		return ref
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}

	if IsGridFSRef(ref) {
		return "/api/images/" + ref
	}

	// Legacy paths like /images/products/<id>: the last segment may still be
	// a GridFS id that was stored with a path prefix.
	if strings.HasPrefix(ref, "/images/") {
		parts := strings.Split(ref, "/")
		filename := parts[len(parts)-1]
		if IsGridFSRef(filename) {
			return "/api/images/" + filename
		}
		return ref
	}

	if !strings.HasPrefix(ref, "/") {
		return "/" + ref
	}

	return ref
}

// ExtractGridFSID pulls a GridFS object id out of a direct reference or a
// legacy path. It returns "" when the reference does not point into GridFS.
func ExtractGridFSID(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.Contains(ref, "/") {
		parts := strings.Split(ref, "/")
		filename := parts[len(parts)-1]
		if IsGridFSRef(filename) {
			return filename
		}
		return ""
	}
	if IsGridFSRef(ref) {
		return ref
	}
	return ""
}
