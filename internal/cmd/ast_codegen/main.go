package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var (
	expressionTypes = []string{
		"Identifier: Name string",
		"Literal: Value Literal",
		"Prefix: Op TokenType, Right Expr",
		"Infix: Op TokenType, Left Expr, Right Expr",
		"Postfix: Op TokenType, Left Expr",
		// A nil Alternative means the if expression has no else branch.
		"If: Cond Expr, Consequence []Stmt, Alternative []Stmt",
		"Function: Params []string, Body []Stmt",
		"Call: Callee Expr, Args []Expr",
		"Index: Left Expr, Index Expr",
	}
	statementTypes = []string{
		"Let: Name string, Value Expr",
		"Return: Value Expr",
		"Expression: Expr Expr",
	}
	literalTypes = []string{
		"Int: Value int64",
		"String: Value string",
		"Bool: Value bool",
		"Array: Elements []Expr",
		// Pairs keep their source order.
		"Hash: Pairs []HashPair",
	}
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	packageName := os.Getenv("GOPACKAGE")
	if packageName == "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			exitOnError(err)
		}
		packageName = filepath.Base(abs)
	}

	exitOnError(defineAst(outputDir, packageName, "Expr", expressionTypes))
	exitOnError(defineAst(outputDir, packageName, "Stmt", statementTypes))
	exitOnError(defineAst(outputDir, packageName, "Literal", literalTypes))
}

func defineAst(outputDir, packageName, baseName string, types []string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for the base type in AST
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "\tString() string\n")
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %v", baseName, err)
	}
	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	var fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Split(field, " ")[0])
	}
	receiver := strings.ToLower(baseName)

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		receiver,
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		receiver,
	)
	fmt.Fprintf(writer, "}\n\n")

	// String method, rendered by the AstPrinter
	fmt.Fprintf(writer, "func (%s *%s%s) String() string {\n", receiver, typeName, baseName)
	fmt.Fprintf(writer, "\ts, _ := %s.Accept(&AstPrinter{})\n", receiver)
	fmt.Fprintf(writer, "\treturn s.(string)\n")
	fmt.Fprintf(writer, "}\n\n")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
