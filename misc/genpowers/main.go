package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"
)

// genpowers writes the power-of-ten lookup table used by the bigdouble
// package. Every entry is emitted as a literal ("1e-307", "1e12", ...) so the
// compiler produces the correctly rounded float64 for each power; computing
// them with math.Pow at runtime drifts for large exponents.
//
// If you change the range here, expMin and expMax in consts.go must change
// with it.

var Error = errs.Class("genpowers")

const usage = `Power of ten table generator

Usage: genpowers [options]`

type options struct {
	Out     string
	Package string
	Min     int
	Max     int
	PerLine int
	Dump    bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	var opts options
	fs := flag.NewFlagSet("genpowers", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.Out, "out", "", "Output file (default stdout)")
	fs.StringVar(&opts.Package, "pkg", "bigdouble", "Package name")
	fs.IntVar(&opts.Min, "min", -307, "Smallest exponent in the table")
	fs.IntVar(&opts.Max, "max", 308, "Largest exponent in the table")
	fs.IntVar(&opts.PerLine, "perline", 10, "Entries per line")
	fs.BoolVar(&opts.Dump, "dump", false, "Dump options to stderr")
	if err := fs.Parse(args); err == flag.ErrHelp {
		return nil
	} else if err != nil {
		return Error.Wrap(err)
	}

	if opts.Dump {
		spew.Fdump(os.Stderr, opts)
	}

	src, err := generate(opts)
	if err != nil {
		return err
	}

	if opts.Out == "" {
		_, err = os.Stdout.Write(src)
		return Error.Wrap(err)
	}
	return Error.Wrap(ioutil.WriteFile(opts.Out, src, 0644))
}

func generate(opts options) ([]byte, error) {
	if opts.Min > opts.Max {
		return nil, Error.New("min %d > max %d", opts.Min, opts.Max)
	}
	if opts.Min < -307 || opts.Max > 308 {
		// Outside this range the literals are subnormal or overflow.
		return nil, Error.New("range [%d, %d] exceeds normal float64 powers of ten [-307, 308]", opts.Min, opts.Max)
	}
	if opts.PerLine <= 0 {
		return nil, Error.New("perline %d must be positive", opts.PerLine)
	}

	var buf bytes.Buffer
	cmd := "genpowers"
	if opts.Out != "" {
		cmd += " -out " + opts.Out
	}
	fmt.Fprintf(&buf, "// Code generated by %q; DO NOT EDIT.\n\n", cmd)
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	buf.WriteString("// pow10tab holds 10^e for e in [expMin, expMax], indexed by e-expMin.\n")
	buf.WriteString("var pow10tab = [...]float64{\n")

	line := make([]string, 0, opts.PerLine)
	for e := opts.Min; e <= opts.Max; e++ {
		line = append(line, fmt.Sprintf("1e%d", e))
		if len(line) == opts.PerLine || e == opts.Max {
			buf.WriteString("\t" + strings.Join(line, ", ") + ",\n")
			line = line[:0]
		}
	}
	buf.WriteString("}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return out, nil
}
