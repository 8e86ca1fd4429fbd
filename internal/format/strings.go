package format

// TruncateWithEllipsis truncates a string to maxWidth runes, appending an
// ellipsis if the string exceeds the limit. If maxWidth is less than 2, the
// string is hard-truncated without the suffix.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}

	if maxWidth < 2 {
		return string(runes[:maxWidth])
	}

	return string(runes[:maxWidth-1]) + "…"
}

// PadRight pads a string with spaces to the given rune width, truncating
// with an ellipsis if it is too long.
func PadRight(s string, width int) string {
	s = TruncateWithEllipsis(s, width)
	for len([]rune(s)) < width {
		s += " "
	}
	return s
}

// PadLeft right-aligns a string within the given rune width.
func PadLeft(s string, width int) string {
	s = TruncateWithEllipsis(s, width)
	pad := width - len([]rune(s))
	out := ""
	for i := 0; i < pad; i++ {
		out += " "
	}
	return out + s
}
