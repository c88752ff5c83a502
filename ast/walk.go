package ast

import "errors"

// ErrSkip can be returned from a Walk or WalkEnterAndExit enter
// function to skip the current node's children. The walk continues
// with the node's exit call, if any, and then its siblings. No
// function in this package returns it as an error.
var ErrSkip = errors.New("skip this node's children")

// Walk performs a depth-first traversal of the tree rooted at node,
// calling fn for each node before any of its children.
func Walk(node Node, fn func(Node) error) error {
	return WalkEnterAndExit(node, fn, nil)
}

// WalkEnterAndExit performs a depth-first traversal of the tree rooted
// at node. It calls enter before a node's children and exit, if not
// nil, after them. Optional children that are absent from the tree are
// not visited, so neither function ever receives a nil node. A non-nil
// error from either function aborts the traversal and is returned,
// except ErrSkip, which only prunes the current node's children.
func WalkEnterAndExit(node Node, enter, exit func(Node) error) error {
	w := &walker{enter: enter, exit: exit}
	return w.walk(node)
}

// Inspect traverses the tree rooted at node, calling f for each node.
// If f returns false, the node's children are skipped.
func Inspect(node Node, f func(Node) bool) {
	_ = Walk(node, func(n Node) error {
		if !f(n) {
			return ErrSkip
		}
		return nil
	})
}

type walker struct {
	enter, exit func(Node) error
}

func (w *walker) walk(n Node) error {
	if err := w.enter(n); err != nil {
		if !errors.Is(err, ErrSkip) {
			return err
		}
		if w.exit != nil {
			return w.exit(n)
		}
		return nil
	}
	if err := w.children(n); err != nil {
		return err
	}
	if w.exit != nil {
		return w.exit(n)
	}
	return nil
}

func walkList[T Node](w *walker, list []T) error {
	for _, n := range list {
		if err := w.walk(n); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) children(n Node) error {
	switch n := n.(type) {
	case *TranslationUnit:
		return walkList(w, n.Decls)
	case *FunctionDef:
		if err := walkList(w, n.Specifiers); err != nil {
			return err
		}
		if err := w.walk(n.Declarator); err != nil {
			return err
		}
		if err := walkList(w, n.Decls); err != nil {
			return err
		}
		return w.walk(n.Body)
	case *Declaration:
		if err := walkList(w, n.Specifiers); err != nil {
			return err
		}
		return walkList(w, n.Declarators)
	case *InitDeclarator:
		if err := w.walk(n.Declarator); err != nil {
			return err
		}
		if n.AsmLabel != nil {
			if err := w.walk(n.AsmLabel); err != nil {
				return err
			}
		}
		if err := walkList(w, n.Attributes); err != nil {
			return err
		}
		if n.Init != nil {
			return w.walk(n.Init)
		}
		return nil
	case *StaticAssert:
		if err := w.walk(n.Condition); err != nil {
			return err
		}
		if n.Message != nil {
			return w.walk(n.Message)
		}
		return nil
	case *StructOrUnionSpecifier:
		if err := walkList(w, n.Attributes); err != nil {
			return err
		}
		if n.Name != nil {
			if err := w.walk(n.Name); err != nil {
				return err
			}
		}
		return walkList(w, n.Fields)
	case *FieldDecl:
		if err := walkList(w, n.Specifiers); err != nil {
			return err
		}
		return walkList(w, n.Declarators)
	case *FieldDeclarator:
		if n.Declarator != nil {
			if err := w.walk(n.Declarator); err != nil {
				return err
			}
		}
		if n.BitWidth != nil {
			return w.walk(n.BitWidth)
		}
		return nil
	case *EnumSpecifier:
		if err := walkList(w, n.Attributes); err != nil {
			return err
		}
		if n.Name != nil {
			if err := w.walk(n.Name); err != nil {
				return err
			}
		}
		return walkList(w, n.Enumerators)
	case *Enumerator:
		if err := w.walk(n.Name); err != nil {
			return err
		}
		if n.Value != nil {
			return w.walk(n.Value)
		}
		return nil
	case *AtomicTypeSpecifier:
		return w.walk(n.Type)
	case *TypeofSpecifier:
		if n.Expr != nil {
			return w.walk(n.Expr)
		}
		if n.Type != nil {
			return w.walk(n.Type)
		}
		return nil
	case *AlignmentSpecifier:
		if n.Type != nil {
			return w.walk(n.Type)
		}
		if n.Expr != nil {
			return w.walk(n.Expr)
		}
		return nil
	case *AttributeSpecifier:
		return walkList(w, n.Attributes)
	case *Attribute:
		return walkList(w, n.Args)
	case *Declarator:
		if n.Name != nil {
			if err := w.walk(n.Name); err != nil {
				return err
			}
		}
		if n.Inner != nil {
			if err := w.walk(n.Inner); err != nil {
				return err
			}
		}
		if err := walkList(w, n.Derived); err != nil {
			return err
		}
		return walkList(w, n.Attributes)
	case *PointerDeclarator:
		return walkList(w, n.Qualifiers)
	case *BlockPointerDeclarator:
		return walkList(w, n.Qualifiers)
	case *ArrayDeclarator:
		if err := walkList(w, n.Qualifiers); err != nil {
			return err
		}
		if n.Size != nil {
			return w.walk(n.Size)
		}
		return nil
	case *FunctionDeclarator:
		return walkList(w, n.Params)
	case *KRFunctionDeclarator:
		return walkList(w, n.Names)
	case *ParamDecl:
		if err := walkList(w, n.Specifiers); err != nil {
			return err
		}
		if n.Declarator != nil {
			return w.walk(n.Declarator)
		}
		return nil
	case *TypeName:
		if err := walkList(w, n.Specifiers); err != nil {
			return err
		}
		if n.Declarator != nil {
			return w.walk(n.Declarator)
		}
		return nil
	case *InitializerList:
		return walkList(w, n.Items)
	case *InitItem:
		if err := walkList(w, n.Designators); err != nil {
			return err
		}
		return w.walk(n.Init)
	case *IndexDesignator:
		return w.walk(n.Index)
	case *MemberDesignator:
		return w.walk(n.Member)
	case *RangeDesignator:
		if err := w.walk(n.From); err != nil {
			return err
		}
		return w.walk(n.To)
	case *ParenExpr:
		return w.walk(n.X)
	case *GenericSelection:
		if err := w.walk(n.Control); err != nil {
			return err
		}
		return walkList(w, n.Assocs)
	case *GenericAssoc:
		if n.Type != nil {
			if err := w.walk(n.Type); err != nil {
				return err
			}
		}
		return w.walk(n.Expr)
	case *IndexExpr:
		if err := w.walk(n.X); err != nil {
			return err
		}
		return w.walk(n.Index)
	case *CallExpr:
		if err := w.walk(n.Fun); err != nil {
			return err
		}
		return walkList(w, n.Args)
	case *SelectorExpr:
		if err := w.walk(n.X); err != nil {
			return err
		}
		return w.walk(n.Sel)
	case *UnaryExpr:
		return w.walk(n.X)
	case *CompoundLiteral:
		if err := w.walk(n.Type); err != nil {
			return err
		}
		return w.walk(n.Init)
	case *SizeofExpr:
		if n.X != nil {
			return w.walk(n.X)
		}
		return w.walk(n.Type)
	case *AlignofExpr:
		if n.X != nil {
			return w.walk(n.X)
		}
		return w.walk(n.Type)
	case *CastExpr:
		if err := w.walk(n.Type); err != nil {
			return err
		}
		return w.walk(n.X)
	case *BinaryExpr:
		if err := w.walk(n.X); err != nil {
			return err
		}
		return w.walk(n.Y)
	case *CondExpr:
		if err := w.walk(n.Cond); err != nil {
			return err
		}
		if n.Then != nil {
			if err := w.walk(n.Then); err != nil {
				return err
			}
		}
		return w.walk(n.Else)
	case *AssignExpr:
		if err := w.walk(n.L); err != nil {
			return err
		}
		return w.walk(n.R)
	case *CommaExpr:
		return walkList(w, n.Exprs)
	case *StmtExpr:
		return w.walk(n.Body)
	case *VaArgExpr:
		if err := w.walk(n.List); err != nil {
			return err
		}
		return w.walk(n.Type)
	case *OffsetofExpr:
		if err := w.walk(n.Type); err != nil {
			return err
		}
		return walkList(w, n.Designators)
	case *BlockExpr:
		if err := walkList(w, n.Params); err != nil {
			return err
		}
		return w.walk(n.Body)
	case *LabeledStmt:
		if err := w.walk(n.Label); err != nil {
			return err
		}
		return w.walk(n.Stmt)
	case *CaseStmt:
		if err := w.walk(n.Value); err != nil {
			return err
		}
		if n.To != nil {
			if err := w.walk(n.To); err != nil {
				return err
			}
		}
		return w.walk(n.Stmt)
	case *DefaultStmt:
		return w.walk(n.Stmt)
	case *CompoundStmt:
		return walkList(w, n.Items)
	case *DeclStmt:
		return w.walk(n.Decl)
	case *LabelDeclStmt:
		return walkList(w, n.Labels)
	case *ExprStmt:
		return w.walk(n.X)
	case *IfStmt:
		if err := w.walk(n.Cond); err != nil {
			return err
		}
		if err := w.walk(n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return w.walk(n.Else)
		}
		return nil
	case *SwitchStmt:
		if err := w.walk(n.Cond); err != nil {
			return err
		}
		return w.walk(n.Body)
	case *WhileStmt:
		if err := w.walk(n.Cond); err != nil {
			return err
		}
		return w.walk(n.Body)
	case *DoWhileStmt:
		if err := w.walk(n.Body); err != nil {
			return err
		}
		return w.walk(n.Cond)
	case *ForStmt:
		if n.Init != nil {
			if err := w.walk(n.Init); err != nil {
				return err
			}
		}
		if n.Cond != nil {
			if err := w.walk(n.Cond); err != nil {
				return err
			}
		}
		if n.Post != nil {
			if err := w.walk(n.Post); err != nil {
				return err
			}
		}
		return w.walk(n.Body)
	case *GotoStmt:
		return w.walk(n.Label)
	case *ReturnStmt:
		if n.Result != nil {
			return w.walk(n.Result)
		}
		return nil
	case *AsmStmt:
		if err := w.walk(n.Template); err != nil {
			return err
		}
		if err := walkList(w, n.Outputs); err != nil {
			return err
		}
		if err := walkList(w, n.Inputs); err != nil {
			return err
		}
		return walkList(w, n.Clobbers)
	case *AsmOperand:
		if n.Name != nil {
			if err := w.walk(n.Name); err != nil {
				return err
			}
		}
		if err := w.walk(n.Constraint); err != nil {
			return err
		}
		return w.walk(n.Expr)
	default:
		// Ident, literals, plain keyword specifiers, and the empty
		// statements and declarations have no children.
		return nil
	}
}
