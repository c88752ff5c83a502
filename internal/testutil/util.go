package testutil

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/cfacet/csyntax/ast"
)

// Dump renders a syntax tree as an indented text outline for
// comparison in tests. Each node prints as its type name followed by
// its scalar fields; child nodes print one level deeper under a line
// naming the field. Spans are left out, so dumps of equal trees match
// even when the inputs differ in spacing, and fields holding a lone
// identifier are inlined as name=value to keep the outline shallow.
func Dump(node ast.Node) string {
	var sb strings.Builder
	dumpNode(&sb, reflect.ValueOf(node), 0)
	return sb.String()
}

var (
	spanType  = reflect.TypeOf(ast.Span{})
	identType = reflect.TypeOf((*ast.Ident)(nil))
)

func dumpNode(sb *strings.Builder, v reflect.Value, depth int) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			indent(sb, depth)
			sb.WriteString("nil\n")
			return
		}
		v = v.Elem()
	}

	t := v.Type()
	indent(sb, depth)
	sb.WriteString(t.Name())

	type child struct {
		name string
		val  reflect.Value
	}
	var kids []child
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		switch {
		case f.Type == spanType:
			// positions are tested separately
		case f.Type == identType:
			if !fv.IsNil() {
				fmt.Fprintf(sb, " %s=%s", f.Name, fv.Interface().(*ast.Ident).Name)
			}
		case f.Type.Kind() == reflect.String:
			if s := fv.String(); s != "" {
				fmt.Fprintf(sb, " %s=%s", f.Name, s)
			}
		case f.Type.Kind() == reflect.Bool:
			if fv.Bool() {
				fmt.Fprintf(sb, " %s=true", f.Name)
			}
		case f.Type.Kind() == reflect.Slice && f.Type.Elem().Kind() == reflect.String:
			if fv.Len() > 0 {
				fmt.Fprintf(sb, " %s=%s", f.Name, strings.Join(fv.Interface().([]string), " "))
			}
		case f.Type.Kind() == reflect.Slice:
			if fv.Len() > 0 {
				kids = append(kids, child{f.Name, fv})
			}
		case f.Type.Kind() == reflect.Pointer, f.Type.Kind() == reflect.Interface:
			if !fv.IsNil() {
				kids = append(kids, child{f.Name, fv})
			}
		}
	}
	sb.WriteByte('\n')

	for _, k := range kids {
		indent(sb, depth+1)
		sb.WriteString(k.name)
		sb.WriteString(":\n")
		if k.val.Kind() == reflect.Slice {
			for i := 0; i < k.val.Len(); i++ {
				dumpNode(sb, k.val.Index(i), depth+2)
			}
		} else {
			dumpNode(sb, k.val, depth+2)
		}
	}
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

// Diff returns a unified diff from want to got, or the empty string
// when the two are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
