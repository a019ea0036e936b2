package segment

// IsHan reports whether r is a Chinese character (CJK Unified Ideographs
// including the extension and compatibility blocks).
func IsHan(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
	case r >= 0x3400 && r <= 0x4DBF: // Extension A
	case r >= 0x20000 && r <= 0x2A6DF: // Extension B
	case r >= 0x2A700 && r <= 0x2B73F: // Extension C
	case r >= 0x2B740 && r <= 0x2B81F: // Extension D
	case r >= 0xF900 && r <= 0xFAFF: // Compatibility Ideographs
	case r >= 0x2F800 && r <= 0x2FA1F: // Compatibility Supplement
	default:
		return false
	}
	return true
}

// ContainsHan reports whether s contains any Chinese character.
func ContainsHan(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}
