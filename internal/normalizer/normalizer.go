// Package normalizer derives canonical lookup keys from raw mod filenames.
//
// Released mod archives carry all sorts of decoration in their filenames:
// translated display names in square brackets, Minecraft version prefixes,
// loader suffixes, release-stage tags and run-together version numbers.
// Normalize strips all of it and returns the lowercase name that the
// catalog is keyed by.
package normalizer

import (
	"regexp"
	"strings"
)

var (
	// Bracketed annotations, e.g. "[更好的钓鱼]". The body must not
	// contain a closing bracket, so stray unbalanced brackets survive.
	bracketPattern = regexp.MustCompile(`\[[^\]]*\]`)

	// Leading Minecraft version such as "1.12.2-" or "1.16.5_".
	mcPrefixPattern = regexp.MustCompile(`(?i)^[0-9]+\.[0-9]+(?:\.[0-9]+)*[-_]`)

	// "for <Loader>" phrases such as " for Fabric" or " for NilLoader".
	forLoaderPattern = regexp.MustCompile(`(?i)\s+for\s+[A-Za-z]+`)

	// A loader token glued directly to a digit, e.g. "forge1.20.1".
	// A space is inserted so the suffix peel can take the version off.
	loaderDigitPattern = regexp.MustCompile(`(?i)(forge|fabric|quilt|neoforge|rift|liteloader|nilloader)([0-9])`)

	// One trailing decoration: a separator followed by a version number,
	// a Minecraft version, a loader name, a release stage, or a common
	// distribution tag, anchored to the end of the stem.
	suffixPattern = regexp.MustCompile(`(?i)[-_+ .]` +
		`(?:` +
		`v?[0-9]+(?:[._-][0-9A-Za-z_+-]+)*` +
		`|mc[0-9]+(?:\.[0-9]+)*` +
		`|forge|fabric|quilt|neoforge|rift|liteloader|nilloader` +
		`|snapshot|pre|rc|beta|alpha` +
		`|universal|all` +
		`)` +
		`\s*$`)

	spaceRunPattern = regexp.MustCompile(` +`)
)

// Normalize maps a raw filename to its canonical lookup key.
// The extension (everything from the last dot, inclusive) is carried
// through the rewriting stages untouched; the whole result is lowercased
// once at the end using ASCII-only case folding.
//
// Normalize is total, deterministic and idempotent.
func Normalize(filename string) string {
	stem, ext := splitExtension(filename)

	stem = bracketPattern.ReplaceAllString(stem, "")
	stem = strings.ReplaceAll(stem, "·", "")
	stem = trimMixedScriptPrefix(stem)
	stem = mcPrefixPattern.ReplaceAllString(stem, "")
	stem = forLoaderPattern.ReplaceAllString(stem, "")
	stem = loaderDigitPattern.ReplaceAllString(stem, "$1 $2")
	stem = peelTrailingSuffixes(stem)

	stem = spaceRunPattern.ReplaceAllString(stem, " ")
	stem = strings.Trim(stem, " -_")

	return asciiLower(stem + ext)
}

// splitExtension partitions a filename at the last dot. The extension
// includes the dot; a dotless filename has an empty extension.
func splitExtension(filename string) (stem, ext string) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return filename, ""
	}
	return filename[:idx], filename[idx:]
}

// trimMixedScriptPrefix handles filenames of the form
// "<非ASCII名><separator><ASCII name>": when the substring after the last
// non-ASCII byte contains at least one ASCII letter, the stem is replaced
// by that substring. A purely non-ASCII stem, or one whose ASCII tail is
// only digits and punctuation, is left alone.
func trimMixedScriptPrefix(stem string) string {
	last := -1
	for i := 0; i < len(stem); i++ {
		if stem[i] >= 0x80 {
			last = i
		}
	}
	if last < 0 || last+1 >= len(stem) {
		return stem
	}

	tail := stem[last+1:]
	if !containsASCIILetter(tail) {
		return stem
	}
	return tail
}

func containsASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// peelTrailingSuffixes removes trailing decorations one at a time until an
// iteration leaves the stem unchanged. Compound tails such as
// "-forge-1.20.1-universal" are peeled token by token, each removal
// possibly exposing the next.
func peelTrailingSuffixes(stem string) string {
	for {
		next := suffixPattern.ReplaceAllString(stem, "")
		if next == stem {
			return stem
		}
		stem = next
	}
}

// asciiLower lowercases ASCII letters only. Bytes at or above 0x80 pass
// through unchanged, so multi-byte UTF-8 sequences are never remapped.
func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}
