package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGeneratorInline(t *testing.T) {
	tmpDir := t.TempDir()

	gen := &Generator{
		VarName:    "demo",
		Values:     "5,7,3,1,-5,9",
		ElemType:   "int",
		OutputDir:  tmpDir,
		PackageOut: "demo",
		EmitRanks:  true,
		N:          -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_demo_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	want := `// Code generated by rankgen. DO NOT EDIT.

package demo

// demoSorted holds demo in non-descending order.
var demoSorted = []int{
	-5,
	1,
	3,
	5,
	7,
	9,
}

// demoRanks maps each demo position to its position in demoSorted.
var demoRanks = []int{
	3,
	4,
	2,
	1,
	0,
	5,
}
`
	if string(got) != want {
		t.Errorf("Generated file mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestGeneratorInlineFloats(t *testing.T) {
	tmpDir := t.TempDir()

	gen := &Generator{
		VarName:    "weights",
		Values:     "0.5, 2, -1.25",
		ElemType:   "float64",
		OutputDir:  tmpDir,
		PackageOut: "demo",
		N:          -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_weights_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	content := string(got)
	for _, want := range []string{"var weightsSorted = []float64{", "-1.25,", "0.5,", "2.0,"} {
		if !strings.Contains(content, want) {
			t.Errorf("Generated file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "weightsRanks") {
		t.Errorf("Generated file has ranks without -ranks:\n%s", content)
	}
}

func TestGeneratorInlinePrefix(t *testing.T) {
	tmpDir := t.TempDir()

	gen := &Generator{
		VarName:    "head",
		Values:     "4,1,9,2",
		ElemType:   "int64",
		OutputDir:  tmpDir,
		PackageOut: "demo",
		N:          2,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_head_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	content := string(got)
	if !strings.Contains(content, "1,\n\t4,\n}") {
		t.Errorf("Generated table should hold exactly [1 4]:\n%s", content)
	}
}

func TestGeneratorInlineInvalid(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"bad_value", Generator{VarName: "x", Values: "1,two", ElemType: "int", PackageOut: "p", N: -1}},
		{"bad_type", Generator{VarName: "x", Values: "1,2", ElemType: "bool", PackageOut: "p", N: -1}},
		{"not_finite", Generator{VarName: "x", Values: "1,Inf", ElemType: "float64", PackageOut: "p", N: -1}},
		{"n_exceeds_len", Generator{VarName: "x", Values: "1,2", ElemType: "int", PackageOut: "p", N: 3}},
		{"negative_n", Generator{VarName: "x", Values: "1,2", ElemType: "int", PackageOut: "p", N: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.gen.OutputDir = t.TempDir()
			if err := tt.gen.Run(); err == nil {
				t.Error("Run succeeded, want error")
			}
		})
	}
}

// writeTestPackage creates a self-contained module with one source file.
func writeTestPackage(t *testing.T, src string) string {
	t.Helper()
	tmpDir := t.TempDir()

	gomod := "module example.com/tables\n\ngo 1.21\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "tables.go"), []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write tables.go: %v", err)
	}
	return tmpDir
}

func TestGeneratorPackageMode(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

var thresholds = []int64{300, 100, 200}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "thresholds",
		OutputDir: tmpDir,
		EmitRanks: true,
		N:         -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if gen.PackageOut != "tables" {
		t.Errorf("PackageOut = %q, want %q", gen.PackageOut, "tables")
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_thresholds_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	content := string(got)
	wants := []string{
		"package tables",
		"var thresholdsSorted = []int64{\n\t100,\n\t200,\n\t300,\n}",
		"var thresholdsRanks = []int{\n\t2,\n\t0,\n\t1,\n}",
	}
	for _, want := range wants {
		if !strings.Contains(content, want) {
			t.Errorf("Generated file missing %q:\n%s", want, content)
		}
	}
}

func TestGeneratorPackageModeStrings(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

var fruits = []string{"cherry", "apple", "banana"}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "fruits",
		OutputDir: tmpDir,
		N:         -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_fruits_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	if !strings.Contains(string(got), "\"apple\",\n\t\"banana\",\n\t\"cherry\",\n}") {
		t.Errorf("Generated file not sorted:\n%s", got)
	}
}

func TestGeneratorPackageForeignType(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

import "time"

var timeouts = []time.Duration{3 * time.Second, time.Millisecond, time.Minute}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "timeouts",
		OutputDir: tmpDir,
		N:         -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_timeouts_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	// The file keeps the qualified type and must import its package
	content := string(got)
	wants := []string{
		"import \"time\"",
		"var timeoutsSorted = []time.Duration{\n\t1000000,\n\t3000000000,\n\t60000000000,\n}",
	}
	for _, want := range wants {
		if !strings.Contains(content, want) {
			t.Errorf("Generated file missing %q:\n%s", want, content)
		}
	}
}

func TestGeneratorPackageLocalType(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

type bucket int64

var buckets = []bucket{30, 10, 20}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "buckets",
		OutputDir: tmpDir,
		N:         -1,
	}

	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmpDir, "z_buckets_sorted.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	content := string(got)
	if !strings.Contains(content, "var bucketsSorted = []bucket{\n\t10,\n\t20,\n\t30,\n}") {
		t.Errorf("Generated file not sorted as []bucket:\n%s", content)
	}
	if strings.Contains(content, "import") {
		t.Errorf("Generated file has a spurious import:\n%s", content)
	}

	// The local type is unreachable from any other output package
	gen2 := &Generator{
		InputDir:   tmpDir,
		VarName:    "buckets",
		OutputDir:  tmpDir,
		PackageOut: "other",
		N:          -1,
	}
	if err := gen2.Run(); err == nil {
		t.Error("Run succeeded emitting a local type into another package, want error")
	}
}

func TestGeneratorPackageNonConstant(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

var base = 2

var bad = []int{1, base}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "bad",
		OutputDir: tmpDir,
		N:         -1,
	}

	err := gen.Run()
	if err == nil {
		t.Fatal("Run succeeded on non-constant element, want error")
	}
	if !strings.Contains(err.Error(), "not a compile-time constant") {
		t.Errorf("Run error = %v, want non-constant element report", err)
	}
}

func TestGeneratorPackageMissingVar(t *testing.T) {
	tmpDir := writeTestPackage(t, `package tables

var thresholds = []int64{300, 100, 200}
`)

	gen := &Generator{
		InputDir:  tmpDir,
		VarName:   "nosuchvar",
		OutputDir: tmpDir,
		N:         -1,
	}

	if err := gen.Run(); err == nil {
		t.Fatal("Run succeeded on missing var, want error")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{2, "2.0"},
		{-1.25, "-1.25"},
		{0, "0.0"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFloat(tt.in); got != tt.want {
				t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
