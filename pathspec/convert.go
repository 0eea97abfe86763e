package pathspec

import "strings"

// DriveConverter maps between Windows drive paths and their POSIX mount
// form, cygpath-style: C:\x <-> <Mount>/c/x. Paths that are not in the
// expected style pass through unchanged.
type DriveConverter struct {
	// Mount is the prefix under which drives appear, e.g. "/mnt" for WSL.
	// Empty means drives mount at the root, as under MSYS.
	Mount string
}

func (c DriveConverter) ToNative(path string) string {
	p, ok := strings.CutPrefix(path, c.Mount+"/")
	if !ok || len(p) == 0 {
		return path
	}
	drive := p[0]
	if !isDriveLetter(drive) {
		return path
	}
	rest := p[1:]
	if rest != "" && rest[0] != '/' {
		return path
	}
	return string(toUpper(drive)) + ":" + strings.ReplaceAll(rest, "/", "\\")
}

func (c DriveConverter) ToPosix(path string) string {
	if len(path) < 2 || path[1] != ':' || !isDriveLetter(path[0]) {
		return path
	}
	rest := strings.ReplaceAll(path[2:], "\\", "/")
	if rest != "" && rest[0] != '/' {
		return path
	}
	return c.Mount + "/" + string(toLower(path[0])) + rest
}

func isDriveLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
