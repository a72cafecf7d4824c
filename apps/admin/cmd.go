package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/timetable"
)

var (
	// mockable
	isTerminalFunc = term.IsTerminal
	getSizeFunc    = term.GetSize

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out        io.Writer
	outFd      int
	logger     core.Logger
	newService func(seed int64) *timetable.Service
}

// namesFlag collects a repeated string flag.
type namesFlag []string

func (f *namesFlag) String() string { return strings.Join(*f, ", ") }

func (f *namesFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  print [-teacher NAME]... [-subject NAME[=TEACHER]]... [-seed N] - generate and print a timetable")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	printCmd := flag.NewFlagSet("print", flag.ContinueOnError)
	printCmd.SetOutput(cli.out)
	var teachers, subjects namesFlag
	printCmd.Var(&teachers, "teacher", "A teacher name. Repeat for more teachers.")
	printCmd.Var(&subjects, "subject", "A subject, optionally with its teacher: Math=Ms. Lee. Repeat for more subjects.")
	printSeed := printCmd.Int64("seed", 0, "Seed of the random source (0: random).")

	switch args[1] {
	case "print":
		if err := printCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if err := cli.print(newTimetableFromFlags(teachers, subjects), *printSeed); err != nil {
			cli.logger.Error("print failed", err)
			return err
		}
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func newTimetableFromFlags(teachers, subjects []string) timetable.NewTimetable {
	nt := timetable.NewTimetable{Teachers: teachers}
	for _, s := range subjects {
		name, teacher := s, timetable.UnknownTeacher
		if idx := strings.Index(s, "="); idx >= 0 {
			name, teacher = s[:idx], s[idx+1:]
		}
		nt.Subjects = append(nt.Subjects, name)
		nt.SubjectTeachers = append(nt.SubjectTeachers, teacher)
	}
	return nt
}
