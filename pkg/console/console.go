// Package console implements the line-based prompts and output of the
// registration program. Every failure message goes through ReportError.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/enroll/pkg/enrollment"
)

// DefaultWidth is the width of the separator line around record listings.
const DefaultWidth = 50

// Prompts and messages shown to the user.
const (
	PromptChoice     = "What would you like to do: "
	PromptFirstName  = "Enter the student's first name: "
	PromptLastName   = "Enter the student's last name: "
	PromptCourseName = "Please enter the name of the course: "

	MsgInvalidChoice = "You must choose 1, 2, 3, or 4"
	MsgInvalidName   = "Only use names without numbers"
	MsgAddFailed     = "There was a non-specific error when adding data!"
	MsgChoiceFailed  = "There was a non-specific error when reading your choice!"
	TechnicalHeader  = "-- Technical Error Message -- "
)

// Choice is a menu selection.
type Choice string

const (
	ChoiceNone     Choice = ""
	ChoiceRegister Choice = "1"
	ChoiceShow     Choice = "2"
	ChoiceSave     Choice = "3"
	ChoiceExit     Choice = "4"
)

// Console reads answers from in and writes everything else to out.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	width  int
	styled bool
	styles Styles
	logger *logrus.Entry
}

// Option configures a Console.
type Option func(*Console)

// WithWidth sets the separator width. Non-positive values are ignored.
func WithWidth(n int) Option {
	return func(c *Console) {
		if n > 0 {
			c.width = n
		}
	}
}

// WithStyles enables lipgloss styling of messages.
func WithStyles(enabled bool) Option {
	return func(c *Console) { c.styled = enabled }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Console. Output is unstyled unless WithStyles(true) is given.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	l := logrus.New()
	l.SetOutput(io.Discard)

	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		width:  DefaultWidth,
		logger: logrus.NewEntry(l),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = NewStyles(out, c.styled)
	return c
}

// ReportError prints message and, when err is non-nil, a technical block with
// the error text, its documentation and its category.
func (c *Console) ReportError(message string, err error) {
	fmt.Fprintf(c.out, "%s\n\n", c.styles.render(c.styles.Error, message))
	if err == nil {
		return
	}

	c.logger.WithError(err).WithField("category", enrollment.Category(err)).Debug(message)
	fmt.Fprintln(c.out, c.styles.render(c.styles.Technical, TechnicalHeader))
	fmt.Fprintln(c.out, c.styles.render(c.styles.Technical, err.Error()))
	fmt.Fprintln(c.out, c.styles.render(c.styles.Technical, enrollment.Doc(err)))
	fmt.Fprintln(c.out, c.styles.render(c.styles.Technical, enrollment.Category(err)))
}

// RenderMenu prints the menu followed by a blank line.
func (c *Console) RenderMenu(menu string) {
	fmt.Fprintf(c.out, "%s\n\n", c.styles.render(c.styles.Menu, menu))
}

// ReadMenuChoice prompts for a menu option. Invalid input is reported and
// yields ChoiceNone. End of input or a broken reader yields ChoiceExit.
func (c *Console) ReadMenuChoice() Choice {
	line, err := c.prompt(PromptChoice)
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.logger.Debug("input closed, exiting")
			return ChoiceExit
		}
		c.ReportError(MsgChoiceFailed, readError(err))
		return ChoiceExit
	}

	switch choice := Choice(line); choice {
	case ChoiceRegister, ChoiceShow, ChoiceSave, ChoiceExit:
		return choice
	default:
		c.logger.WithField("input", line).Debug("invalid menu choice")
		c.ReportError(MsgInvalidChoice, nil)
		return ChoiceNone
	}
}

// ReadNewRecord prompts for a record and appends it to records. A name that is
// not letters-only abandons the whole record and records is returned as is.
func (c *Console) ReadNewRecord(records []enrollment.Record) []enrollment.Record {
	first, err := c.promptName(PromptFirstName, "first name")
	if err != nil {
		c.reportRecordError(err)
		return records
	}
	last, err := c.promptName(PromptLastName, "last name")
	if err != nil {
		c.reportRecordError(err)
		return records
	}
	course, err := c.prompt(PromptCourseName)
	if err != nil {
		c.reportRecordError(readError(err))
		return records
	}

	rec := enrollment.Record{FirstName: first, LastName: last, CourseName: course}
	records = append(records, rec)
	c.logger.WithFields(logrus.Fields{
		"first":  first,
		"last":   last,
		"course": course,
	}).Debug("registered student")

	msg := fmt.Sprintf("You have registered %s %s for %s.", first, last, course)
	fmt.Fprintln(c.out, c.styles.render(c.styles.Success, msg))
	return records
}

// DisplayRecords lists records between two separator lines.
func (c *Console) DisplayRecords(records []enrollment.Record) {
	sep := c.styles.render(c.styles.Separator, strings.Repeat("-", c.width))
	fmt.Fprintln(c.out, sep)
	for _, r := range records {
		fmt.Fprintln(c.out, r.String())
	}
	fmt.Fprintln(c.out, sep)
}

func (c *Console) promptName(text, field string) (string, error) {
	value, err := c.prompt(text)
	if err != nil {
		return "", readError(err)
	}
	if err := enrollment.ValidateName(field, value); err != nil {
		return "", err
	}
	return value, nil
}

func (c *Console) reportRecordError(err error) {
	if enrollment.IsKind(err, enrollment.KindInvalidName) {
		c.ReportError(MsgInvalidName, err)
		return
	}
	c.ReportError(MsgAddFailed, err)
}

// prompt writes text and reads one line without its line terminator. A last
// line without a newline is returned normally; io.EOF is returned only when
// nothing was read.
func (c *Console) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			fmt.Fprintln(c.out)
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readError(err error) error {
	return &enrollment.Error{Op: "console.read", Kind: enrollment.KindIO, Err: err}
}
