package desktop

import (
	"errors"
	"regexp"
	"strings"
)

// Extension is the file suffix of application descriptors
const Extension = ".desktop"

var (
	nameRegex      = regexp.MustCompile(`(?m)^Name=([^\r\n]+)`)
	execRegex      = regexp.MustCompile(`(?m)^Exec=([^\r\n]+)`)
	iconRegex      = regexp.MustCompile(`(?m)^Icon=([^\r\n]+)`)
	noDisplayRegex = regexp.MustCompile(`(?m)^NoDisplay=([^\r\n]+)`)

	// %f %F %u %U are file/URL field codes filled in by the caller
	fieldCodeRegex = regexp.MustCompile(`%[fFuU]`)
)

var (
	ErrMissingName = errors.New("descriptor has no Name")
	ErrMissingExec = errors.New("descriptor has no Exec")
	ErrHidden      = errors.New("descriptor is NoDisplay")
)

// Entry holds the fields read from one descriptor
type Entry struct {
	Name string
	Exec string // Field codes stripped, trimmed
	Icon string // Logical icon name or absolute path, may be empty
}

// Parse extracts an Entry from descriptor content. The first matching line
// wins for every key.
func Parse(data []byte) (Entry, error) {
	content := string(data)

	name := firstMatch(nameRegex, content)
	if name == "" {
		return Entry{}, ErrMissingName
	}
	exec := firstMatch(execRegex, content)
	if exec == "" {
		return Entry{}, ErrMissingExec
	}
	if noDisplay := firstMatch(noDisplayRegex, content); strings.EqualFold(strings.TrimSpace(noDisplay), "true") {
		return Entry{}, ErrHidden
	}

	return Entry{
		Name: name,
		Exec: NormalizeExec(exec),
		Icon: strings.TrimSpace(firstMatch(iconRegex, content)),
	}, nil
}

// NormalizeExec strips %f/%F/%u/%U field codes and surrounding whitespace
func NormalizeExec(exec string) string {
	return strings.TrimSpace(fieldCodeRegex.ReplaceAllString(exec, ""))
}

func firstMatch(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}
