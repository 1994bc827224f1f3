// Command vibin is a demo host for the varrec/versioninfo packages: it
// reads a raw VS_VERSIONINFO blob from disk, reports its fixed file info,
// translations and string tables, and optionally writes it back out in the
// other wire dialect. Grounded on itchio-butler's main.go single-binary
// kingpin layout, simplified to one command since this has nothing else to
// dispatch to.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ddablib/vibin/varrec"
	"github.com/ddablib/vibin/versioninfo"
	"github.com/ddablib/vibin/vslog"
)

var (
	version = "head"
	app     = kingpin.New("vibin", "Inspect and convert VS_VERSIONINFO resource blobs")

	inPath   = app.Arg("in", "Path to a raw VS_VERSIONINFO blob").Required().ExistingFile()
	dialect  = app.Flag("dialect", "Dialect of the input blob: ansi16 or wide32").Default("wide32").Short('d').Enum("ansi16", "wide32")
	convert  = app.Flag("convert-to", "Write a converted copy in the other dialect").Short('c').String()
	verbose  = app.Flag("verbose", "Log diagnostic detail while reading").Short('v').Bool()
)

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')

	if _, err := app.Parse(os.Args[1:]); err != nil {
		kingpin.Fatalf("%s", err)
	}

	runID := uuid.New().String()
	log.SetFlags(0)

	data, err := ioutil.ReadFile(*inPath)
	must(err)

	d := varrec.Wide32
	if *dialect == "ansi16" {
		d = varrec.ANSI16
	}

	vi := versioninfo.New(d)
	if *verbose {
		vi.SetConsumer(vslog.NewConsumer(func(level, msg string) {
			log.Printf("[%s][%s] %s", runID, level, msg)
		}))
	}

	must(vi.ReadFromStream(varrec.NewMemoryStream(data)))
	must(vi.Validate())

	report(vi, data)

	if *convert != "" {
		target := versioninfo.New(otherDialect(d))
		target.Assign(vi)

		out := varrec.NewMemoryStream(nil)
		must(target.WriteToStream(out))
		must(ioutil.WriteFile(*convert, out.Bytes(), 0644))
		fmt.Printf("wrote %s copy (%s) to %s\n", target.Dialect(), humanize.Bytes(uint64(len(out.Bytes()))), *convert)
	}
}

func otherDialect(d varrec.Dialect) varrec.Dialect {
	if d == varrec.Wide32 {
		return varrec.ANSI16
	}
	return varrec.Wide32
}

func report(vi *versioninfo.VersionInfo, raw []byte) {
	ffi := vi.FixedFileInfo()
	fmt.Printf("dialect:     %s\n", vi.Dialect())
	fmt.Printf("size:        %s\n", humanize.Bytes(uint64(len(raw))))
	fmt.Printf("fixed info:  %s\n", ffi)

	for i, code := range vi.Translations() {
		lang, cs := versioninfo.UnpackTranslation(code)
		fmt.Printf("translation[%d]: %s\n", i, versioninfo.FormatTranslation(lang, cs))
	}

	tableCount := vi.StringTableCount()
	for t := 0; t < tableCount; t++ {
		trans, err := vi.StringTableTransString(t)
		must(err)
		names, err := vi.Strings(t)
		must(err)
		fmt.Printf("table[%d] %s: %d string(s)\n", t, trans, len(names))
		for _, name := range names {
			value, err := vi.StringValueByName(t, name)
			must(err)
			fmt.Printf("  %s = %q\n", name, value)
		}
	}
}

func must(err error) {
	if err != nil {
		log.Fatalf("vibin: %s", err)
	}
}
