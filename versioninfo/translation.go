package versioninfo

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/ddablib/vibin/varrec"
)

// sentinelUnchanged marks "leave this half unchanged" in SetTranslation
// and "treat as 0" in AddTranslation, per spec.md §4.3.2.
const sentinelUnchanged uint16 = 0xFFFF

// PackTranslation packs a language ID and a character-set ID into a single
// translation code: charset in the high 16 bits, language in the low 16
// (spec.md §4.3.3).
func PackTranslation(lang, charset uint16) uint32 {
	return uint32(charset)<<16 | uint32(lang)
}

// UnpackTranslation splits a translation code back into language and
// charset.
func UnpackTranslation(code uint32) (lang, charset uint16) {
	return uint16(code), uint16(code >> 16)
}

// FormatTranslation renders a translation as its 8-hex-digit string form,
// language first: spec.md §3.2/§4.3.3 — `fmt!("{:04X}{:04X}", language, charset)`.
func FormatTranslation(lang, charset uint16) string {
	return fmt.Sprintf("%04X%04X", lang, charset)
}

// ParseTranslation parses an 8-hex-digit translation string (case
// insensitive), language first, back into its two halves.
func ParseTranslation(s string) (lang, charset uint16, err error) {
	if len(s) != 8 {
		return 0, 0, &varrec.Error{Kind: varrec.KindCorrupt, Message: fmt.Sprintf("translation string %q must be exactly 8 hex digits", s)}
	}
	l, perr := strconv.ParseUint(s[0:4], 16, 16)
	if perr != nil {
		return 0, 0, &varrec.Error{Kind: varrec.KindCorrupt, Message: fmt.Sprintf("invalid language half of %q", s), Cause: perr}
	}
	c, perr := strconv.ParseUint(s[4:8], 16, 16)
	if perr != nil {
		return 0, 0, &varrec.Error{Kind: varrec.KindCorrupt, Message: fmt.Sprintf("invalid charset half of %q", s), Cause: perr}
	}
	return uint16(l), uint16(c), nil
}

// TranslationCount returns the number of translation entries.
func (vi *VersionInfo) TranslationCount() int {
	return len(vi.translationNode().Value()) / 4
}

func (vi *VersionInfo) translationCodeAt(i int) (uint32, error) {
	node := vi.translationNode()
	count := len(node.Value()) / 4
	if i < 0 || i >= count {
		return 0, &varrec.Error{Kind: varrec.KindIndexOutOfBounds, Message: fmt.Sprintf("translation index %d out of bounds for count %d", i, count)}
	}
	return binary.LittleEndian.Uint32(node.Value()[i*4:]), nil
}

// TranslationLanguageID returns the language half of translation i.
func (vi *VersionInfo) TranslationLanguageID(i int) (uint16, error) {
	code, err := vi.translationCodeAt(i)
	if err != nil {
		return 0, err
	}
	lang, _ := UnpackTranslation(code)
	return lang, nil
}

// TranslationCharset returns the charset half of translation i.
func (vi *VersionInfo) TranslationCharset(i int) (uint16, error) {
	code, err := vi.translationCodeAt(i)
	if err != nil {
		return 0, err
	}
	_, cs := UnpackTranslation(code)
	return cs, nil
}

// TranslationString returns translation i as its 8-hex-digit string.
func (vi *VersionInfo) TranslationString(i int) (string, error) {
	code, err := vi.translationCodeAt(i)
	if err != nil {
		return "", err
	}
	lang, cs := UnpackTranslation(code)
	return FormatTranslation(lang, cs), nil
}

// Translations returns every translation code in wire order. Supplements
// the indexed accessors above per SPEC_FULL.md, for callers that want to
// range over the list instead of indexing it.
func (vi *VersionInfo) Translations() []uint32 {
	v := vi.translationNode().Value()
	out := make([]uint32, len(v)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(v[i*4:])
	}
	return out
}

// SetTranslation overwrites translation i. A sentinel value of 0xFFFF in
// lang or charset means "leave that half unchanged" (spec.md §4.3.2).
func (vi *VersionInfo) SetTranslation(i int, lang, charset uint16) error {
	node := vi.translationNode()
	count := len(node.Value()) / 4
	if i < 0 || i >= count {
		return &varrec.Error{Kind: varrec.KindIndexOutOfBounds, Message: fmt.Sprintf("translation index %d out of bounds for count %d", i, count)}
	}
	cur := binary.LittleEndian.Uint32(node.Value()[i*4:])
	curLang, curCharset := UnpackTranslation(cur)
	if lang == sentinelUnchanged {
		lang = curLang
	}
	if charset == sentinelUnchanged {
		charset = curCharset
	}
	buf := append([]byte(nil), node.Value()...)
	binary.LittleEndian.PutUint32(buf[i*4:], PackTranslation(lang, charset))
	node.SetValue(buf)
	return nil
}

// AddTranslation appends a new translation and returns its index. A
// sentinel value of 0xFFFF in lang or charset is treated as 0 (spec.md
// §4.3.2 — the sentinel means something different here than in
// SetTranslation).
func (vi *VersionInfo) AddTranslation(lang, charset uint16) int {
	if lang == sentinelUnchanged {
		lang = 0
	}
	if charset == sentinelUnchanged {
		charset = 0
	}
	node := vi.translationNode()
	var entry [4]byte
	binary.LittleEndian.PutUint32(entry[:], PackTranslation(lang, charset))
	buf := append(append([]byte(nil), node.Value()...), entry[:]...)
	node.SetValue(buf)
	return len(buf)/4 - 1
}

// DeleteTranslation removes translation i, shifting later entries down by
// one index.
func (vi *VersionInfo) DeleteTranslation(i int) error {
	node := vi.translationNode()
	v := node.Value()
	count := len(v) / 4
	if i < 0 || i >= count {
		return &varrec.Error{Kind: varrec.KindIndexOutOfBounds, Message: fmt.Sprintf("translation index %d out of bounds for count %d", i, count)}
	}
	buf := make([]byte, 0, len(v)-4)
	buf = append(buf, v[:i*4]...)
	buf = append(buf, v[(i+1)*4:]...)
	node.SetValue(buf)
	return nil
}

// IndexOfTranslation returns the index of the first translation matching
// (lang, charset), or -1 if none does.
func (vi *VersionInfo) IndexOfTranslation(lang, charset uint16) int {
	count := vi.TranslationCount()
	for i := 0; i < count; i++ {
		code, _ := vi.translationCodeAt(i)
		l, c := UnpackTranslation(code)
		if l == lang && c == charset {
			return i
		}
	}
	return -1
}
