// Package shell is the line-oriented prompt loop: add, delete, list, report, exit.
// It reads answers from any io.Reader so it works on pipes as well as terminals.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cellstats/internal/models"
	"cellstats/internal/report"
	"cellstats/internal/session"
)

const menuPrompt = "\nChoose an action (add, delete, list, report, exit): "

type Shell struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	format  string
}

func New(s *session.Session, in io.Reader, out io.Writer, format string) *Shell {
	return &Shell{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		format:  format,
	}
}

// Run prompts until "exit" or the input ends.
func (sh *Shell) Run() error {
	for {
		action, ok := sh.ask(menuPrompt)
		if !ok {
			return sh.in.Err()
		}

		switch strings.ToLower(action) {
		case "add":
			if !sh.add() {
				return sh.in.Err()
			}
		case "delete":
			if !sh.delete() {
				return sh.in.Err()
			}
		case "list":
			if err := report.WriteUniqueValues(sh.out, sh.format, sh.session.UniqueValues()); err != nil {
				return err
			}
		case "report":
			if err := report.Write(sh.out, sh.format, sh.session.Report()); err != nil {
				return err
			}
		case "exit":
			return nil
		default:
			fmt.Fprintln(sh.out, "Invalid option")
		}
	}
}

// add asks for every field in column order. It returns false if input ran out.
func (sh *Shell) add() bool {
	var raw models.RawCell
	for _, f := range models.Fields() {
		answer, ok := sh.ask(f.Prompt())
		if !ok {
			return false
		}
		raw = raw.Set(f, answer)
	}
	key := sh.session.Add(raw)
	fmt.Fprintf(sh.out, "New cell added at index %d.\n", key)
	return true
}

func (sh *Shell) delete() bool {
	answer, ok := sh.ask("\nEnter the index of the cell to delete: ")
	if !ok {
		return false
	}
	key, err := strconv.Atoi(answer)
	if err == nil && sh.session.Delete(key) {
		fmt.Fprintf(sh.out, "Cell at index %d has been deleted.\n", key)
	} else {
		fmt.Fprintln(sh.out, "No cell found at that index.")
	}
	return true
}

// ask prints prompt and returns the next trimmed line.
func (sh *Shell) ask(prompt string) (string, bool) {
	fmt.Fprint(sh.out, prompt)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}
