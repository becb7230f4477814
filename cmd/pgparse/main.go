// Command pgparse is the CLI surface over this module's lossless
// PostgreSQL parser: parse/dump SQL from a file or stdin, run a handful of
// illustrative lint rules over it, or fetch live DDL from a running server
// and parse that. It is adapted from cmd/psqldef's option-parsing and
// password-prompt flow, generalized from "diff and apply a schema" to
// "parse and report on SQL text."
package main

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/sqldef/pgparse/cst"
	"github.com/sqldef/pgparse/internal/fetch"
	"github.com/sqldef/pgparse/internal/util"
	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/parser"
)

var version string

// ParseCmd parses SQL and reports only diagnostics - a quick well-
// formedness check for CI or pre-commit hooks.
type ParseCmd struct {
	File string `short:"f" long:"file" description:"Read SQL from the file, rather than stdin" value-name:"filename" default:"-"`
}

// DumpCmd parses SQL and pretty-prints the resulting CST.
type DumpCmd struct {
	File string `short:"f" long:"file" description:"Read SQL from the file, rather than stdin" value-name:"filename" default:"-"`
}

// LintCmd runs the illustrative rule set over parsed SQL, optionally
// restricted to a subset of rule names read from a YAML config file.
type LintCmd struct {
	File   string `short:"f" long:"file" description:"Read SQL from the file, rather than stdin" value-name:"filename" default:"-"`
	Config string `short:"c" long:"config" description:"Path to a .pgparse.yml rule config" value-name:"path"`
}

// FetchCmd pulls every table's DDL out of a live PostgreSQL database via
// pg_dump and parses each one, reporting any diagnostic pgparse itself
// would raise on schema pg_dump claims is valid.
type FetchCmd struct {
	User     string `short:"U" long:"user" description:"PostgreSQL user name" value-name:"username" default:"postgres"`
	Password string `short:"W" long:"password" description:"PostgreSQL user password, overridden by $PGPASS" value-name:"password"`
	Host     string `short:"h" long:"host" description:"Host to connect to the PostgreSQL server" value-name:"hostname" default:"127.0.0.1"`
	Port     uint   `short:"p" long:"port" description:"Port used for the connection" value-name:"port" default:"5432"`
	Prompt   bool   `long:"password-prompt" description:"Force PostgreSQL user password prompt"`
	DbName   string `long:"db" description:"Database name" required:"true" value-name:"name"`
}

type options struct {
	Parse   ParseCmd `command:"parse" description:"Parse SQL and report diagnostics"`
	Dump    DumpCmd  `command:"dump" description:"Parse SQL and print the resulting CST"`
	Lint    LintCmd  `command:"lint" description:"Run lint rules over parsed SQL"`
	Fetch   FetchCmd `command:"fetch" description:"Fetch DDL from a live database and parse it"`
	Version bool     `long:"version" description:"Show this version"`
}

func main() {
	util.InitSlog()

	var opts options
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			if opts.Version {
				fmt.Println(version)
				os.Exit(0)
			}
			p.WriteHelp(os.Stdout)
			os.Exit(1)
		}
		return cmd.Execute(args)
	}
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readInput(file string) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}

func parseSource(src string) (parser.Tree, *cst.Tree) {
	tokens := lexer.Tokenize(src)
	tree := parser.Parse(tokens)
	return tree, cst.Build(tree)
}

func (c *ParseCmd) Execute(args []string) error {
	src, err := readInput(c.File)
	if err != nil {
		return fmt.Errorf("pgparse parse: %w", err)
	}
	_, built := parseSource(src)
	lines := util.TransformSlice(built.Diagnostics, func(d cst.Diagnostic) string {
		return fmt.Sprintf("%d: %s", d.Offset, d.Message)
	})
	for _, line := range lines {
		fmt.Println(line)
	}
	if len(built.Diagnostics) > 0 {
		os.Exit(1)
	}
	return nil
}

func (c *DumpCmd) Execute(args []string) error {
	src, err := readInput(c.File)
	if err != nil {
		return fmt.Errorf("pgparse dump: %w", err)
	}
	_, built := parseSource(src)
	pp.Println(built.Root)
	for _, d := range built.Diagnostics {
		fmt.Printf("error at %d: %s\n", d.Offset, d.Message)
	}
	return nil
}

func (c *LintCmd) Execute(args []string) error {
	src, err := readInput(c.File)
	if err != nil {
		return fmt.Errorf("pgparse lint: %w", err)
	}
	var ruleNames []string
	if c.Config != "" {
		ruleNames, err = loadLintConfig(c.Config)
		if err != nil {
			return fmt.Errorf("pgparse lint: %w", err)
		}
	}
	_, built := parseSource(src)
	violations := cst.RunRules(built.Root, ruleNames)
	byRule := make(map[string][]cst.Violation)
	for _, v := range violations {
		byRule[v.Rule] = append(byRule[v.Rule], v)
	}
	// Print in sorted rule-name order so repeated runs over the same input
	// produce identical output regardless of Go's randomized map iteration.
	for rule, vs := range util.CanonicalMapIter(byRule) {
		for _, v := range vs {
			fmt.Printf("%s: %s\n", rule, v.Message)
		}
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
	return nil
}

func (c *FetchCmd) Execute(args []string) error {
	password := c.Password
	if envPass, ok := os.LookupEnv("PGPASS"); ok {
		password = envPass
	}
	if c.Prompt {
		fmt.Print("Enter Password: ")
		pass, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("pgparse fetch: %w", err)
		}
		password = string(pass)
		fmt.Println()
	}

	source, err := fetch.Open(fetch.Config{
		Host:     c.Host,
		Port:     int(c.Port),
		User:     c.User,
		Password: password,
		DbName:   c.DbName,
	}, fetch.StdoutLogger{})
	if err != nil {
		return fmt.Errorf("pgparse fetch: %w", err)
	}
	defer source.Close()

	tables, err := source.TableNames()
	if err != nil {
		return fmt.Errorf("pgparse fetch: %w", err)
	}

	failed := 0
	for _, table := range tables {
		ddl, err := source.TableDDL(table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", table, err)
			failed++
			continue
		}
		_, built := parseSource(ddl)
		for _, d := range built.Diagnostics {
			fmt.Printf("%s: %d: %s\n", table, d.Offset, d.Message)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
