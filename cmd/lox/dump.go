package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/lox/lox"
	"gopkg.in/yaml.v3"
)

// DumpTokens prints the token stream of a script, one token per line.
type DumpTokens func(ctx context.Context, path string) error

func (Module) DumpTokens(
	stdout Stdout,
) DumpTokens {
	return func(ctx context.Context, path string) (err error) {
		defer he(&err)
		content, err := os.ReadFile(path)
		ce(err)
		tokens, err := lox.Scan(string(content))
		if err != nil {
			return err
		}
		for _, token := range tokens {
			_, err := fmt.Fprintf(stdout, "%d\t%s\n", token.Line, token)
			ce(err)
		}
		return nil
	}
}

// DumpAST prints the syntax tree of a script.
// Statements print in prefix form unless asYAML is set.
type DumpAST func(ctx context.Context, path string, asYAML bool) error

func (Module) DumpAST(
	stdout Stdout,
) DumpAST {
	return func(ctx context.Context, path string, asYAML bool) (err error) {
		defer he(&err)
		content, err := os.ReadFile(path)
		ce(err)
		tokens, err := lox.Scan(string(content))
		if err != nil {
			return err
		}
		stmts, err := lox.ParseAll(tokens)
		if err != nil {
			return err
		}

		if asYAML {
			nodes := make([]*lox.Node, 0, len(stmts))
			for _, stmt := range stmts {
				nodes = append(nodes, lox.StmtNode(stmt))
			}
			encoder := yaml.NewEncoder(stdout)
			encoder.SetIndent(2)
			ce(encoder.Encode(nodes))
			ce(encoder.Close())
			return nil
		}

		for _, stmt := range stmts {
			_, err := fmt.Fprintln(stdout, lox.PrettyPrintStmt(stmt))
			ce(err)
		}
		return nil
	}
}
