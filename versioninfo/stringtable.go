package versioninfo

import (
	"fmt"

	"github.com/ddablib/vibin/varrec"
)

// StringTableCount returns the number of string tables under StringFileInfo.
func (vi *VersionInfo) StringTableCount() int {
	return vi.stringFileInfo().ChildCount()
}

func (vi *VersionInfo) stringTableAt(i int) (*varrec.Node, error) {
	table, err := vi.stringFileInfo().ChildAt(i)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// StringTableTransString returns string table i's name, which is its
// 8-hex-digit translation string (spec.md §4.3.2, §6.2).
func (vi *VersionInfo) StringTableTransString(i int) (string, error) {
	t, err := vi.stringTableAt(i)
	if err != nil {
		return "", err
	}
	return t.Name(), nil
}

// StringTableLanguageID returns the language half of string table i's name.
func (vi *VersionInfo) StringTableLanguageID(i int) (uint16, error) {
	s, err := vi.StringTableTransString(i)
	if err != nil {
		return 0, err
	}
	lang, _, err := ParseTranslation(s)
	return lang, err
}

// StringTableCharset returns the charset half of string table i's name.
func (vi *VersionInfo) StringTableCharset(i int) (uint16, error) {
	s, err := vi.StringTableTransString(i)
	if err != nil {
		return 0, err
	}
	_, cs, err := ParseTranslation(s)
	return cs, err
}

// AddStringTable creates a new string table named transStr and returns its
// index.
func (vi *VersionInfo) AddStringTable(transStr string) (int, error) {
	if _, _, err := ParseTranslation(transStr); err != nil {
		return 0, err
	}
	sfi := vi.stringFileInfo()
	sfi.AddChild(transStr, varrec.Binary)
	return sfi.ChildCount() - 1, nil
}

// AddStringTableByTrans creates a new string table named after (lang, cs)
// and returns its index.
func (vi *VersionInfo) AddStringTableByTrans(lang, cs uint16) (int, error) {
	return vi.AddStringTable(FormatTranslation(lang, cs))
}

// DeleteStringTable removes string table i and all of its strings.
func (vi *VersionInfo) DeleteStringTable(i int) error {
	return vi.stringFileInfo().DeleteChildAt(i)
}

// IndexOfStringTable returns the index of the string table named transStr
// (case-insensitive), or -1 if none exists.
func (vi *VersionInfo) IndexOfStringTable(transStr string) int {
	return vi.stringFileInfo().IndexOfChild(transStr)
}

// IndexOfStringTableByTrans returns the index of the string table whose
// name matches (lang, cs), or -1 if none exists.
func (vi *VersionInfo) IndexOfStringTableByTrans(lang, cs uint16) int {
	return vi.IndexOfStringTable(FormatTranslation(lang, cs))
}

// StringCount returns the number of strings in table t.
func (vi *VersionInfo) StringCount(t int) (int, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	return table.ChildCount(), nil
}

// Strings returns, in wire order, the names of every string in table t.
// Supplements the indexed accessors per SPEC_FULL.md.
func (vi *VersionInfo) Strings(t int) ([]string, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return nil, err
	}
	names := make([]string, table.ChildCount())
	for i, c := range table.Children() {
		names[i] = c.Name()
	}
	return names, nil
}

func (vi *VersionInfo) stringNodeAt(t, s int) (*varrec.Node, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return nil, err
	}
	return table.ChildAt(s)
}

// StringName returns the name of string s in table t.
func (vi *VersionInfo) StringName(t, s int) (string, error) {
	node, err := vi.stringNodeAt(t, s)
	if err != nil {
		return "", err
	}
	return node.Name(), nil
}

// StringValue returns the decoded value of string s in table t.
func (vi *VersionInfo) StringValue(t, s int) (string, error) {
	node, err := vi.stringNodeAt(t, s)
	if err != nil {
		return "", err
	}
	return varrec.DecodeCString(vi.Dialect(), node.Value()), nil
}

// StringValueByName returns the decoded value of the string named name in
// table t.
func (vi *VersionInfo) StringValueByName(t int, name string) (string, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return "", err
	}
	node := table.FindChild(name)
	if node == nil {
		return "", &varrec.Error{Kind: varrec.KindUnknownName, Message: fmt.Sprintf("no string named %q", name)}
	}
	return varrec.DecodeCString(vi.Dialect(), node.Value()), nil
}

// IndexOfString returns the index of the string named name in table t, or
// -1 if none exists.
func (vi *VersionInfo) IndexOfString(t int, name string) (int, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	return table.IndexOfChild(name), nil
}

// AddString creates a new TEXT string named name with the given value in
// table t and returns its index. Fails with KindDuplicateName if name
// already exists in that table (spec.md §4.3.2).
func (vi *VersionInfo) AddString(t int, name, value string) (int, error) {
	return vi.addStringRaw(t, name, varrec.EncodeCString(vi.Dialect(), value))
}

// addStringRaw creates a new TEXT string named name with a pre-encoded raw
// value. Assign uses this directly (bypassing AddString's dialect-default
// encoder) when it needs to route a value through code-page conversion
// instead of the plain dialect encoder.
func (vi *VersionInfo) addStringRaw(t int, name string, rawValue []byte) (int, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	if table.FindChild(name) != nil {
		return 0, &varrec.Error{Kind: varrec.KindDuplicateName, Message: fmt.Sprintf("a string named %q already exists", name)}
	}
	node := table.AddChild(name, varrec.Text)
	node.SetValue(rawValue)
	return table.ChildCount() - 1, nil
}

// AddOrUpdateString creates the string named name in table t if absent, or
// overwrites its value if present, returning its index either way.
func (vi *VersionInfo) AddOrUpdateString(t int, name, value string) (int, error) {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	if node := table.FindChild(name); node != nil {
		node.SetValue(varrec.EncodeCString(vi.Dialect(), value))
		return table.IndexOfChild(name), nil
	}
	node := table.AddChild(name, varrec.Text)
	node.SetValue(varrec.EncodeCString(vi.Dialect(), value))
	return table.ChildCount() - 1, nil
}

// SetStringValue overwrites the value of string s in table t.
func (vi *VersionInfo) SetStringValue(t, s int, value string) error {
	node, err := vi.stringNodeAt(t, s)
	if err != nil {
		return err
	}
	node.SetValue(varrec.EncodeCString(vi.Dialect(), value))
	return nil
}

// SetStringValueByName overwrites the value of the string named name in
// table t. Fails with KindUnknownName if it doesn't exist.
func (vi *VersionInfo) SetStringValueByName(t int, name, value string) error {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return err
	}
	node := table.FindChild(name)
	if node == nil {
		return &varrec.Error{Kind: varrec.KindUnknownName, Message: fmt.Sprintf("no string named %q", name)}
	}
	node.SetValue(varrec.EncodeCString(vi.Dialect(), value))
	return nil
}

// DeleteString removes string s from table t.
func (vi *VersionInfo) DeleteString(t, s int) error {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return err
	}
	return table.DeleteChildAt(s)
}

// DeleteStringByName removes the string named name from table t. Fails
// with KindUnknownName if it doesn't exist.
func (vi *VersionInfo) DeleteStringByName(t int, name string) error {
	table, err := vi.stringTableAt(t)
	if err != nil {
		return err
	}
	idx := table.IndexOfChild(name)
	if idx < 0 {
		return &varrec.Error{Kind: varrec.KindUnknownName, Message: fmt.Sprintf("no string named %q", name)}
	}
	return table.DeleteChildAt(idx)
}
