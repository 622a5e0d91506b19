// Package registrar runs the menu-driven registration loop.
package registrar

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/enroll/pkg/console"
	"github.com/grovetools/enroll/pkg/enrollment"
)

// Menu is the fixed four-option menu.
const Menu = `
---- Course Registration Program ----
  Select from the following menu:  
    1. Register a Student for a Course.
    2. Show current data.  
    3. Save data to a file.
    4. Exit the program.
----------------------------------------- 
`

// ClosingMessage is printed when the loop exits.
const ClosingMessage = "Program Ended"

// Terminal is the console side of the loop.
type Terminal interface {
	RenderMenu(menu string)
	ReadMenuChoice() console.Choice
	ReadNewRecord(records []enrollment.Record) []enrollment.Record
	DisplayRecords(records []enrollment.Record)
}

// Files is the persistence side of the loop.
type Files interface {
	LoadRecords(fileName string, current []enrollment.Record) []enrollment.Record
	SaveRecords(fileName string, records []enrollment.Record)
}

// State of the loop.
type State int

const (
	AwaitChoice State = iota
	Register
	Show
	Save
	Exit
)

func (s State) String() string {
	switch s {
	case AwaitChoice:
		return "await_choice"
	case Register:
		return "register"
	case Show:
		return "show"
	case Save:
		return "save"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Loop owns the in-memory record list for one run.
type Loop struct {
	term     Terminal
	files    Files
	fileName string
	menu     string
	out      io.Writer
	logger   *logrus.Entry

	records []enrollment.Record
}

// Config holds the loop's collaborators.
type Config struct {
	Terminal Terminal
	Files    Files
	FileName string
	// Menu defaults to Menu when empty.
	Menu string
	// Out receives the closing message.
	Out    io.Writer
	Logger *logrus.Entry
}

// New creates a loop with an empty record list.
func New(cfg Config) *Loop {
	menu := cfg.Menu
	if menu == "" {
		menu = Menu
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &Loop{
		term:     cfg.Terminal,
		files:    cfg.Files,
		fileName: cfg.FileName,
		menu:     menu,
		out:      out,
		logger:   logger,
		records:  []enrollment.Record{},
	}
}

// Records returns the current in-memory list.
func (l *Loop) Records() []enrollment.Record {
	return l.records
}

// Run loads the data file once, then serves the menu until Exit is chosen.
func (l *Loop) Run() {
	l.records = l.files.LoadRecords(l.fileName, l.records)
	l.logger.WithField("records", len(l.records)).Debug("registration started")

	for {
		l.term.RenderMenu(l.menu)
		if l.Step(l.term.ReadMenuChoice()) == Exit {
			break
		}
	}

	fmt.Fprintln(l.out, ClosingMessage)
}

// Step dispatches one menu choice and reports which state it went through.
// Anything but a valid choice is an idle tick.
func (l *Loop) Step(choice console.Choice) State {
	state := dispatchState(choice)
	l.logger.WithField("state", state.String()).Debug("dispatch")

	switch state {
	case Register:
		l.records = l.term.ReadNewRecord(l.records)
	case Show:
		l.term.DisplayRecords(l.records)
	case Save:
		l.files.SaveRecords(l.fileName, l.records)
	}
	return state
}

func dispatchState(choice console.Choice) State {
	switch choice {
	case console.ChoiceRegister:
		return Register
	case console.ChoiceShow:
		return Show
	case console.ChoiceSave:
		return Save
	case console.ChoiceExit:
		return Exit
	default:
		return AwaitChoice
	}
}
