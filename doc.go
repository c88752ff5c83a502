// Package csyntax parses C source files into abstract syntax trees.
// It covers C11 plus the common GNU and Clang extensions, and it works
// on preprocessed text: the preprocessor is an external collaborator
// (gcc or clang in -E mode), not part of this module.
//
// The pipeline has three steps:
//  1. Preprocess the file by running the configured command.
//     Also see: Parse
//  2. Parse the preprocessed text into a translation unit.
//     Also see: ParsePreprocessed, parser.Parse
//  3. Resolve error offsets back to the original files using the
//     preprocessor's line markers.
//     Also see: SyntaxError.ResolveLocation, source.LocationForOffset
//
// The sub-packages hold the pieces: ast defines the syntax tree, env
// the scoped symbol table that disambiguates typedef names, parser the
// lexer and grammar, and source the line-marker resolver.
//
// A minimal use parses one file with the platform's usual compiler as
// the preprocessor:
//
//	result, err := csyntax.Parse(ctx, csyntax.DefaultConfig(), "main.c")
//	if err != nil {
//		var serr *csyntax.SyntaxError
//		if errors.As(err, &serr) {
//			fmt.Println(serr.Snippet())
//		}
//		return err
//	}
//	for _, decl := range result.Unit.Decls {
//		// ...
//	}
//
// Parsing C needs symbol-table feedback: whether "T * x;" declares a
// pointer or multiplies depends on whether T was declared as a typedef
// earlier. Each call builds a fresh environment from the configured
// Flavor, so parses are independent of each other; a Driver runs many
// files in parallel on that basis.
package csyntax
