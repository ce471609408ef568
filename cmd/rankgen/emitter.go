package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// emit writes the generated file: the sorted table and, optionally, the
// rank permutation.
func (g *Generator) emit(t *Table, ranks []int) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by rankgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.PackageOut)
	if t.ImportPath != "" {
		fmt.Fprintf(&buf, "import %q\n\n", t.ImportPath)
	}

	fmt.Fprintf(&buf, "// %sSorted holds %s in non-descending order.\n", t.Name, t.Name)
	fmt.Fprintf(&buf, "var %sSorted = []%s{\n", t.Name, t.TypeName)
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintf(&buf, "\t%s,\n", t.render(i))
	}
	fmt.Fprintf(&buf, "}\n")

	if ranks != nil {
		fmt.Fprintf(&buf, "\n// %sRanks maps each %s position to its position in %sSorted.\n", t.Name, t.Name, t.Name)
		fmt.Fprintf(&buf, "var %sRanks = []int{\n", t.Name)
		for _, r := range ranks {
			fmt.Fprintf(&buf, "\t%d,\n", r)
		}
		fmt.Fprintf(&buf, "}\n")
	}

	// Format the code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed: %v\n", err)
		formatted = buf.Bytes()
	}

	name := g.OutputPrefix
	if name == "" {
		name = "z_" + strings.ToLower(t.Name) + "_sorted.go"
	}
	filename := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write sorted table: %w", err)
	}

	return nil
}

// render formats value i as a Go literal.
func (t *Table) render(i int) string {
	switch t.Kind {
	case KindInt:
		return strconv.FormatInt(t.Ints[i], 10)
	case KindUint:
		return strconv.FormatUint(t.Uints[i], 10)
	case KindFloat:
		return formatFloat(t.Floats[i])
	case KindString:
		return strconv.Quote(t.Strs[i])
	}
	return ""
}

// formatFloat renders f so it round-trips exactly and still reads as a
// float literal.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
