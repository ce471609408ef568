// Copyright 2025 go-ranksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"math"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ajroetker/go-ranksort/rank"
)

// Kind classifies a table's element type.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
)

// Table is a resolved constant slice: the source variable name, the element
// type as it should appear in generated code, and the values in exactly one
// of the typed slices.
type Table struct {
	Name       string
	TypeName   string
	ImportPath string // import required by TypeName, empty for local and builtin types
	Kind       Kind
	Ints       []int64
	Uints      []uint64
	Floats     []float64
	Strs       []string

	localNamed bool // element type is declared in the loaded package
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	switch t.Kind {
	case KindUint:
		return len(t.Uints)
	case KindFloat:
		return len(t.Floats)
	case KindString:
		return len(t.Strs)
	default:
		return len(t.Ints)
	}
}

// Generator orchestrates table resolution, sorting, and emission.
type Generator struct {
	InputDir     string // Package directory to load (package mode)
	VarName      string // Slice variable to resolve
	Values       string // Inline comma-separated values (inline mode)
	ElemType     string // Element type for inline mode
	OutputDir    string // Output directory
	OutputPrefix string // Output file name (defaults to z_<var>_sorted.go)
	PackageOut   string // Output package name (defaults to the input package)
	EmitRanks    bool   // Also emit the rank permutation
	N            int    // Element count to sort, -1 for the whole table
}

// Run executes the generation pipeline.
func (g *Generator) Run() error {
	// 1. Resolve the table
	var table *Table
	var err error
	if g.Values != "" {
		table, err = g.parseInline()
	} else {
		table, err = g.loadVar()
	}
	if err != nil {
		return err
	}

	// 2. Sort at generation time
	n := g.N
	switch {
	case n == -1:
		n = table.Len()
	case n < 0:
		return fmt.Errorf("negative element count %d", n)
	}
	sorted, ranks, err := sortTable(table, n, g.EmitRanks)
	if err != nil {
		return err
	}

	// 3. Emit
	if g.PackageOut == "" {
		return fmt.Errorf("no output package name")
	}
	return g.emit(sorted, ranks)
}

// sortTable sorts the first n table elements. The same code path that
// serves runtime callers produces the generated output, so the two can
// never disagree.
func sortTable(t *Table, n int, withRanks bool) (*Table, []int, error) {
	out := &Table{Name: t.Name, TypeName: t.TypeName, ImportPath: t.ImportPath, Kind: t.Kind}
	var err error
	switch t.Kind {
	case KindInt:
		out.Ints, err = rank.Sort(t.Ints, n)
	case KindUint:
		out.Uints, err = rank.Sort(t.Uints, n)
	case KindFloat:
		out.Floats, err = rank.Sort(t.Floats, n)
	case KindString:
		out.Strs, err = rank.Sort(t.Strs, n)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("sort %s: %w", t.Name, err)
	}

	if !withRanks {
		return out, nil, nil
	}
	var ranks []int
	switch t.Kind {
	case KindInt:
		ranks, err = rank.Ranks(t.Ints, n)
	case KindUint:
		ranks, err = rank.Ranks(t.Uints, n)
	case KindFloat:
		ranks, err = rank.Ranks(t.Floats, n)
	case KindString:
		ranks, err = rank.Ranks(t.Strs, n)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("rank %s: %w", t.Name, err)
	}
	return out, ranks, nil
}

// loadVar resolves the named slice variable in the package at InputDir and
// evaluates its elements as compile-time constants.
func (g *Generator) loadVar() (*Table, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: g.InputDir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", g.InputDir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("load package %s: %v", pkg.Name, pkg.Errors[0])
	}
	if g.PackageOut == "" {
		g.PackageOut = pkg.Name
	}

	lit, err := findSliceLiteral(pkg, g.VarName)
	if err != nil {
		return nil, err
	}
	table, err := resolveElements(pkg, g.VarName, lit)
	if err != nil {
		return nil, err
	}
	if table.localNamed && g.PackageOut != pkg.Name {
		return nil, fmt.Errorf("element type %s of var %s is declared in package %s and unreachable from package %s",
			table.TypeName, g.VarName, pkg.Name, g.PackageOut)
	}
	return table, nil
}

// findSliceLiteral locates the composite literal assigned to name in a
// package-level var declaration.
func findSliceLiteral(pkg *packages.Package, name string) (*ast.CompositeLit, error) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.VAR {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, ident := range vs.Names {
					if ident.Name != name || i >= len(vs.Values) {
						continue
					}
					lit, ok := vs.Values[i].(*ast.CompositeLit)
					if !ok {
						return nil, fmt.Errorf("var %s is not a composite literal", name)
					}
					return lit, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("no package-level var %s found", name)
}

// resolveElements evaluates every literal element as a typed constant. A
// single non-constant element fails the run: a table that cannot be
// evaluated at generation time cannot be sorted at generation time.
func resolveElements(pkg *packages.Package, name string, lit *ast.CompositeLit) (*Table, error) {
	tv, ok := pkg.TypesInfo.Types[lit]
	if !ok {
		return nil, fmt.Errorf("no type information for var %s", name)
	}
	slice, ok := tv.Type.Underlying().(*types.Slice)
	if !ok {
		return nil, fmt.Errorf("var %s is %s, want a slice", name, tv.Type)
	}
	elem := slice.Elem()
	basic, ok := elem.Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("element type %s of var %s is not ordered", elem, name)
	}

	t := &Table{Name: name}
	// A foreign element type keeps its package-name qualifier; the generated
	// file must then carry the matching import.
	t.TypeName = types.TypeString(elem, func(other *types.Package) string {
		if other == pkg.Types {
			t.localNamed = true
			return ""
		}
		t.ImportPath = other.Path()
		return other.Name()
	})
	switch {
	case basic.Info()&types.IsUnsigned != 0:
		t.Kind = KindUint
	case basic.Info()&types.IsInteger != 0:
		t.Kind = KindInt
	case basic.Info()&types.IsFloat != 0:
		t.Kind = KindFloat
	case basic.Info()&types.IsString != 0:
		t.Kind = KindString
	default:
		return nil, fmt.Errorf("element type %s of var %s is not ordered", elem, name)
	}

	for i, e := range lit.Elts {
		if _, ok := e.(*ast.KeyValueExpr); ok {
			return nil, fmt.Errorf("var %s: indexed element %d not supported", name, i)
		}
		ev, ok := pkg.TypesInfo.Types[e]
		if !ok || ev.Value == nil {
			return nil, fmt.Errorf("var %s: element %d is not a compile-time constant", name, i)
		}
		if err := appendConst(t, ev.Value); err != nil {
			return nil, fmt.Errorf("var %s: element %d: %w", name, i, err)
		}
	}
	return t, nil
}

// appendConst converts one constant to the table's value slice.
func appendConst(t *Table, v constant.Value) error {
	switch t.Kind {
	case KindInt:
		iv := constant.ToInt(v)
		if iv.Kind() == constant.Unknown {
			return fmt.Errorf("constant %s is not an integer", v)
		}
		n, ok := constant.Int64Val(iv)
		if !ok {
			return fmt.Errorf("constant %s overflows int64", v)
		}
		t.Ints = append(t.Ints, n)
	case KindUint:
		iv := constant.ToInt(v)
		if iv.Kind() == constant.Unknown {
			return fmt.Errorf("constant %s is not an integer", v)
		}
		n, ok := constant.Uint64Val(iv)
		if !ok {
			return fmt.Errorf("constant %s overflows uint64", v)
		}
		t.Uints = append(t.Uints, n)
	case KindFloat:
		fv := constant.ToFloat(v)
		if fv.Kind() == constant.Unknown {
			return fmt.Errorf("constant %s is not a float", v)
		}
		// Nearest float64; typed constants are already rounded
		f, _ := constant.Float64Val(fv)
		t.Floats = append(t.Floats, f)
	case KindString:
		if v.Kind() != constant.String {
			return fmt.Errorf("constant %s is not a string", v)
		}
		t.Strs = append(t.Strs, constant.StringVal(v))
	}
	return nil
}

// parseInline builds a table from -values, for one-off tables without a
// package on disk.
func (g *Generator) parseInline() (*Table, error) {
	t := &Table{Name: g.VarName, TypeName: g.ElemType}
	switch g.ElemType {
	case "int", "int8", "int16", "int32", "int64":
		t.Kind = KindInt
	case "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
		t.Kind = KindUint
	case "float32", "float64":
		t.Kind = KindFloat
	case "string":
		t.Kind = KindString
	default:
		return nil, fmt.Errorf("unsupported element type %q", g.ElemType)
	}

	for i, field := range strings.Split(g.Values, ",") {
		field = strings.TrimSpace(field)
		switch t.Kind {
		case KindInt:
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			t.Ints = append(t.Ints, n)
		case KindUint:
			n, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			t.Uints = append(t.Uints, n)
		case KindFloat:
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, fmt.Errorf("value %d: %s is not finite", i, field)
			}
			t.Floats = append(t.Floats, f)
		case KindString:
			t.Strs = append(t.Strs, field)
		}
	}
	return t, nil
}
