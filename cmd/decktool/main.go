// Command decktool lints, converts and formats deck files offline.
//
//	decktool check FILE...               lint .white/.black/.json files
//	decktool convert [-o OUT] NAME WHITE BLACK
//	decktool fmt FILE...                 rewrite JSON decks in canonical form
//	decktool new [-dir D] [-display N] [-lang L] NAME
//	decktool hash-password               read a password on stdin, print its hash
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"magecards/crypto"
	"magecards/deck"
)

var (
	errUsage    = errors.New("usage")
	errProblems = errors.New("problems found")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: decktool check|convert|fmt|new|hash-password ...")
		return 2
	}

	var err error
	switch args[0] {
	case "check":
		err = check(args[1:], stdout)
	case "convert":
		err = convert(args[1:], stdout)
	case "fmt":
		err = format(args[1:])
	case "new":
		err = newDeck(args[1:], stdout)
	case "hash-password":
		err = hashPassword(stdin, stdout)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func check(files []string, out io.Writer) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: check FILE...", errUsage)
	}
	total := 0
	for _, file := range files {
		issues, err := checkFile(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "--- %s ---\n", file)
		for _, issue := range issues {
			fmt.Fprintln(out, "  "+issue)
		}
		if len(issues) == 0 {
			fmt.Fprintln(out, "  ok")
		}
		total += len(issues)
	}
	if total > 0 {
		return fmt.Errorf("%w: %d", errProblems, total)
	}
	return nil
}

func checkFile(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return []string{"file is not UTF-8"}, nil
	}

	var issues []string
	switch filepath.Ext(file) {
	case ".white":
		lineIssues, err := deck.CheckLegacyWhite(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		for _, li := range lineIssues {
			issues = append(issues, li.String())
		}
	case ".black":
		cards, err := deck.ParseLegacyBlack(bytes.NewReader(data), deck.NewUUIDGenerator())
		if err != nil {
			return nil, err
		}
		d := deck.New("check", "check", "")
		d.Cards.Black = cards
		issues = validationIssues(d)
	case ".json":
		d, err := deck.Unmarshal(data)
		if err != nil {
			return []string{err.Error()}, nil
		}
		issues = validationIssues(d)
	default:
		return nil, fmt.Errorf("%w: %s: expected .white, .black or .json", errUsage, file)
	}
	return issues, nil
}

func validationIssues(d deck.Deck) []string {
	err := d.Validate()
	if err == nil {
		return nil
	}
	return strings.Split(err.Error(), "\n")
}

func convert(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	output := fs.String("o", "", "write the deck here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("%w: convert [-o OUT] NAME WHITE BLACK", errUsage)
	}
	name, whitePath, blackPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	white, err := os.Open(whitePath)
	if err != nil {
		return err
	}
	defer white.Close()
	black, err := os.Open(blackPath)
	if err != nil {
		return err
	}
	defer black.Close()

	d, err := deck.ImportLegacy(name, white, black, deck.NewUUIDGenerator())
	if err != nil {
		return err
	}
	if *output == "" {
		return deck.Save(stdout, d)
	}
	return writeDeck(*output, d)
}

func format(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: fmt FILE...", errUsage)
	}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		d, err := deck.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := writeDeck(file, d); err != nil {
			return err
		}
	}
	return nil
}

func newDeck(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	dir := fs.String("dir", ".", "directory for the new deck file")
	display := fs.String("display", "", "display name (defaults to NAME)")
	lang := fs.String("lang", "pl", "deck language")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: new [-dir D] [-display N] [-lang L] NAME", errUsage)
	}
	name := fs.Arg(0)
	if !deck.ValidName(name) {
		return fmt.Errorf("%w: invalid deck name %q", errUsage, name)
	}
	if *display == "" {
		*display = name
	}

	path := filepath.Join(*dir, name+".json")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := writeDeck(path, deck.New(name, *display, *lang)); err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	return nil
}

func hashPassword(stdin io.Reader, stdout io.Writer) error {
	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%w: hash-password reads the password from stdin", errUsage)
	}
	password := strings.TrimRight(sc.Text(), "\r")
	if password == "" {
		return fmt.Errorf("%w: empty password", errUsage)
	}
	hash, err := crypto.NewDefaultHasher().Hash(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hash)
	return nil
}

func writeDeck(path string, d deck.Deck) error {
	data, err := deck.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
