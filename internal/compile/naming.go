package compile

import "strings"

const (
	// DrawingExt is the extension of drawing files.
	DrawingExt = ".svg"
	// basenameLen is the number of hex digits in a drawing filename.
	basenameLen = 5
)

// MatchDrawingName reports whether name is a drawing filename such as
// "05b66.svg" and returns its hex basename. Variant drawings like
// "05b66-Kaisho.svg" do not match.
func MatchDrawingName(name string) (string, bool) {
	if len(name) != basenameLen+len(DrawingExt) || !strings.HasSuffix(name, DrawingExt) {
		return "", false
	}

	basename := name[:basenameLen]
	for i := 0; i < len(basename); i++ {
		if !isHexDigit(basename[i]) {
			return "", false
		}
	}

	return basename, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
