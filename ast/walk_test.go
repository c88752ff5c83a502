package ast_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/env"
	"github.com/cfacet/csyntax/parser"
)

func parse(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	unit, err := parser.Parse(src, env.NewGNU())
	require.Nil(t, err, "unexpected syntax error: %v", err)
	return unit
}

func TestWalkVisitsPreOrder(t *testing.T) {
	unit := parse(t, "int x = 1 + 2;\n")

	var visited []string
	err := ast.Walk(unit, func(n ast.Node) error {
		visited = append(visited, fmt.Sprintf("%T", n))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"*ast.TranslationUnit",
		"*ast.Declaration",
		"*ast.TypeSpecifier",
		"*ast.InitDeclarator",
		"*ast.Declarator",
		"*ast.Ident",
		"*ast.BinaryExpr",
		"*ast.IntegerLiteral",
		"*ast.IntegerLiteral",
	}, visited)
}

func TestWalkSkipPrunesChildren(t *testing.T) {
	unit := parse(t, "int x = 1 + 2;\n")

	var visited int
	err := ast.Walk(unit, func(n ast.Node) error {
		visited++
		if _, ok := n.(*ast.InitDeclarator); ok {
			return ast.ErrSkip
		}
		if _, ok := n.(*ast.BinaryExpr); ok {
			t.Error("walked into a pruned subtree")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, visited)
}

func TestWalkAborts(t *testing.T) {
	unit := parse(t, "int x = 1 + 2;\n")

	sentinel := errors.New("stop")
	var literals int
	err := ast.Walk(unit, func(n ast.Node) error {
		if _, ok := n.(*ast.IntegerLiteral); ok {
			literals++
			return sentinel
		}
		return nil
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, literals, "the walk stops at the first error")
}

func TestWalkEnterAndExit(t *testing.T) {
	unit := parse(t, "int f(void) { return 0; }\n")

	var events []string
	err := ast.WalkEnterAndExit(unit,
		func(n ast.Node) error {
			events = append(events, fmt.Sprintf("enter %T", n))
			return nil
		},
		func(n ast.Node) error {
			events = append(events, fmt.Sprintf("exit %T", n))
			return nil
		})
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, "enter *ast.TranslationUnit", events[0])
	assert.Equal(t, "exit *ast.TranslationUnit", events[len(events)-1])

	var enters, exits int
	for _, ev := range events {
		if ev[:2] == "en" {
			enters++
		} else {
			exits++
		}
	}
	assert.Equal(t, enters, exits)

	// A leaf exits immediately after it is entered.
	for i, ev := range events {
		if ev == "enter *ast.IntegerLiteral" {
			assert.Equal(t, "exit *ast.IntegerLiteral", events[i+1])
		}
	}
}

func TestWalkEnterAndExitSkip(t *testing.T) {
	unit := parse(t, "int f(void) { return 0; }\n")

	var events []string
	err := ast.WalkEnterAndExit(unit,
		func(n ast.Node) error {
			events = append(events, fmt.Sprintf("enter %T", n))
			if _, ok := n.(*ast.FunctionDef); ok {
				return ast.ErrSkip
			}
			return nil
		},
		func(n ast.Node) error {
			events = append(events, fmt.Sprintf("exit %T", n))
			return nil
		})
	require.NoError(t, err)

	// ErrSkip prunes the children but the node still gets its exit.
	assert.Equal(t, []string{
		"enter *ast.TranslationUnit",
		"enter *ast.FunctionDef",
		"exit *ast.FunctionDef",
		"exit *ast.TranslationUnit",
	}, events)
}

func TestInspect(t *testing.T) {
	unit := parse(t, "int a;\nint f(void) { int b; return b; }\n")

	var names []string
	ast.Inspect(unit, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CompoundStmt:
			return false
		case *ast.Ident:
			names = append(names, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "f"}, names, "nothing inside the pruned body is visited")
}
