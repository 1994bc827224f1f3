package versioninfo

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ddablib/vibin/varrec"
)

// assignCodePage is the ANSI code page Assign uses to bridge the 16-bit
// dialect's raw bytes to and from Unicode. spec.md §9 explicitly leaves
// this unresolved ("use the platform's default ANSI code page... document
// the code-page ambiguity as a known compatibility hazard") rather than
// asking for a configurable or detected code page, so one fixed default is
// used throughout, following coffeeforyou-vbasig/util.ConvertFromCodepageToUtf8's
// own default branch (`charmap.Windows1252`).
//
// Compatibility hazard: a 16-bit tree produced under a different code page
// (e.g. a CJK one) will have its high-byte characters mis-decoded here.
// The format itself carries no code-page tag to do better.
var assignCodePage = charmap.Windows1252

// Assign clears vi and copies source's fixed file info, translations (in
// order), and string tables and their strings (in order) into vi. This is
// the dialect-conversion primitive spec.md §4.3.2 describes: assigning a
// 16-bit source into a 32-bit target (or the reverse) re-encodes every
// key and string through the target dialect, which is how format
// conversion is achieved — there is no separate "convert" operation.
func (vi *VersionInfo) Assign(source *VersionInfo) {
	vi.Reset()
	vi.SetFixedFileInfo(source.FixedFileInfo())

	for _, code := range source.Translations() {
		lang, cs := UnpackTranslation(code)
		vi.AddTranslation(lang, cs)
	}

	tableCount := source.StringTableCount()
	for t := 0; t < tableCount; t++ {
		transStr, err := source.StringTableTransString(t)
		if err != nil {
			continue
		}
		dstTable, err := vi.AddStringTable(transStr)
		if err != nil {
			continue
		}

		stringCount, _ := source.StringCount(t)
		for s := 0; s < stringCount; s++ {
			name, err := source.StringName(t, s)
			if err != nil {
				continue
			}
			node, err := source.stringNodeAt(t, s)
			if err != nil {
				continue
			}
			text := decodeDialectValue(source.Dialect(), node.Value())
			raw := encodeDialectValue(vi.Dialect(), text)
			vi.addStringRaw(dstTable, name, raw)
		}
	}
}

// decodeDialectValue recovers the conceptual Unicode string carried by a
// NUL-terminated string node's raw value, bridging through assignCodePage
// for the ANSI16 dialect (whose raw bytes are code-page bytes, not UTF-8
// or ASCII-only text in general) and plain UTF-16 decode for Wide32.
func decodeDialectValue(dialect varrec.Dialect, raw []byte) string {
	if dialect == varrec.Wide32 {
		return varrec.DecodeCString(varrec.Wide32, raw)
	}
	trimmed := raw
	if n := len(trimmed); n > 0 && trimmed[n-1] == 0 {
		trimmed = trimmed[:n-1]
	}
	decoded, _, err := transform.Bytes(assignCodePage.NewDecoder(), trimmed)
	if err != nil {
		return varrec.DecodeCString(varrec.ANSI16, raw)
	}
	return string(decoded)
}

// encodeDialectValue is decodeDialectValue's inverse: renders a Unicode
// string as a NUL-terminated dialect value, bridging through
// assignCodePage for ANSI16.
func encodeDialectValue(dialect varrec.Dialect, text string) []byte {
	if dialect == varrec.Wide32 {
		return varrec.EncodeCString(varrec.Wide32, text)
	}
	encoded, _, err := transform.Bytes(assignCodePage.NewEncoder(), []byte(text))
	if err != nil {
		encoded = []byte(text)
	}
	return append(encoded, 0)
}
