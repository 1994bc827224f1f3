// Package versioninfo is the semantic overlay spec.md §3.2/§4.3 describes:
// a thin, typed layer over a varrec.Node tree rooted at "VS_VERSION_INFO",
// exposing operations on fixed file info, translations, string tables and
// their strings, without callers ever touching the raw record tree.
//
// Grounded on pelican.parseVersion's walk of the same tree shape
// (VarFileInfo/Translation, StringFileInfo/<table>/<string>) — read-only
// there, constructed and mutated here.
package versioninfo

import (
	"github.com/ddablib/vibin/varrec"
	"github.com/ddablib/vibin/vslog"
)

const (
	nameRoot           = "VS_VERSION_INFO"
	nameVarFileInfo    = "VarFileInfo"
	nameTranslation    = "Translation"
	nameStringFileInfo = "StringFileInfo"
)

// VersionInfo wraps one VarRec tree and maintains the required shape
// spec.md §4.3.1 mandates: VarFileInfo/Translation and StringFileInfo
// always exist, created empty if missing.
type VersionInfo struct {
	root     *varrec.Node
	consumer *vslog.Consumer
}

// New builds an empty VersionInfo of the given dialect: a stamped, zeroed
// fixed file info and the required interior nodes, nothing else.
func New(dialect varrec.Dialect) *VersionInfo {
	vi := &VersionInfo{root: varrec.NewRoot(dialect, nameRoot)}
	vi.root.SetValue(stampedZeroFFI())
	vi.ensureShape()
	return vi
}

// SetConsumer attaches an optional diagnostic callback sink. A nil
// consumer (the default) means diagnostics are simply not reported;
// nothing in VersionInfo depends on one being set.
func (vi *VersionInfo) SetConsumer(c *vslog.Consumer) { vi.consumer = c }

func (vi *VersionInfo) debugf(format string, args ...interface{}) {
	if vi.consumer != nil {
		vi.consumer.Debugf(format, args...)
	}
}

// Dialect reports the dialect of the underlying tree.
func (vi *VersionInfo) Dialect() varrec.Dialect { return vi.root.Dialect() }

// Root exposes the underlying VarRec tree for callers that need to drop
// down to the codec layer (e.g. to inspect a table's raw node). Most
// callers shouldn't need this.
func (vi *VersionInfo) Root() *varrec.Node { return vi.root }

// Reset clears the tree back to a fresh, empty VersionInfo: one
// VarFileInfo/Translation path, one empty StringFileInfo, and a zeroed,
// stamped fixed file info. Per spec.md §4.3.1.
func (vi *VersionInfo) Reset() {
	vi.root.ClearChildren()
	vi.root.SetValue(stampedZeroFFI())
	vi.ensureShape()
}

// ReadFromStream replaces the tree with one parsed from s, in this
// VersionInfo's dialect, then repairs the required shape exactly as
// construction and Reset do.
func (vi *VersionInfo) ReadFromStream(s varrec.Stream) error {
	root, err := varrec.ReadTree(s, vi.root.Dialect())
	if err != nil {
		return err
	}
	vi.root = root
	vi.ensureShape()
	vi.debugf("read VS_VERSIONINFO tree: %d string table(s), %d translation(s)",
		vi.StringTableCount(), vi.TranslationCount())
	return nil
}

// WriteToStream serializes the tree to s.
func (vi *VersionInfo) WriteToStream(s varrec.Stream) error {
	return varrec.WriteTree(s, vi.root)
}

// ensureShape creates any of the required interior nodes that are missing,
// and renames the root unconditionally, exactly per spec.md §4.3.1. It is
// the one place that encodes "what must exist"; New, Reset and
// ReadFromStream all route through it.
func (vi *VersionInfo) ensureShape() {
	vi.root.SetName(nameRoot)
	varFileInfo := vi.root.EnsureChild(nameVarFileInfo, varrec.Binary)
	varFileInfo.EnsureChild(nameTranslation, varrec.Binary)
	vi.root.EnsureChild(nameStringFileInfo, varrec.Binary)
}

func (vi *VersionInfo) varFileInfo() *varrec.Node {
	return vi.root.FindChild(nameVarFileInfo)
}

func (vi *VersionInfo) translationNode() *varrec.Node {
	return vi.varFileInfo().FindChild(nameTranslation)
}

func (vi *VersionInfo) stringFileInfo() *varrec.Node {
	return vi.root.FindChild(nameStringFileInfo)
}

// Validate checks that the required interior nodes are present and
// well-formed without repairing anything (repair only happens in New,
// Reset and ReadFromStream, via ensureShape). Supplements spec.md per
// SPEC_FULL.md: a cheap structural soundness check distinct from the
// mutating repair path.
func (vi *VersionInfo) Validate() error {
	if vi.root == nil || !asciiEqualFoldLocal(vi.root.Name(), nameRoot) {
		return varrec.Corrupt
	}
	vfi := vi.varFileInfo()
	if vfi == nil {
		return varrec.Corrupt
	}
	if vfi.FindChild(nameTranslation) == nil {
		return varrec.Corrupt
	}
	if vi.stringFileInfo() == nil {
		return varrec.Corrupt
	}
	return nil
}

// asciiEqualFoldLocal mirrors varrec's unexported ASCII case fold, since
// spec.md's Design Notes call for locale-independent ASCII folding
// everywhere names are compared, including here in Validate.
func asciiEqualFoldLocal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
