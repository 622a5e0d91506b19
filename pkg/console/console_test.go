package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/enroll/pkg/enrollment"
)

func newTestConsole(input string, opts ...Option) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, opts...), out
}

func TestReadMenuChoice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Choice
		wantError bool
	}{
		{name: "register", input: "1\n", want: ChoiceRegister},
		{name: "show", input: "2\n", want: ChoiceShow},
		{name: "save", input: "3\n", want: ChoiceSave},
		{name: "exit", input: "4\n", want: ChoiceExit},
		{name: "crlf line ending", input: "2\r\n", want: ChoiceShow},
		{name: "leading space", input: " 1\n", want: ChoiceNone, wantError: true},
		{name: "surrounding whitespace", input: "  2 \r\n", want: ChoiceNone, wantError: true},
		{name: "last line without newline", input: "3", want: ChoiceSave},
		{name: "out of range", input: "9\n", want: ChoiceNone, wantError: true},
		{name: "zero", input: "0\n", want: ChoiceNone, wantError: true},
		{name: "word", input: "exit\n", want: ChoiceNone, wantError: true},
		{name: "empty line", input: "\n", want: ChoiceNone, wantError: true},
		{name: "end of input", input: "", want: ChoiceExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			got := c.ReadMenuChoice()

			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), PromptChoice))
			if tt.wantError {
				assert.Contains(t, out.String(), MsgInvalidChoice)
			} else {
				assert.NotContains(t, out.String(), MsgInvalidChoice)
			}
			assert.NotContains(t, out.String(), TechnicalHeader)
		})
	}
}

func TestReadNewRecord(t *testing.T) {
	prior := []enrollment.Record{{FirstName: "Ada", LastName: "Lovelace", CourseName: "Math"}}
	c, out := newTestConsole("John\nSmith\nCS101\n")

	got := c.ReadNewRecord(prior)

	require.Len(t, got, 2)
	assert.Equal(t, prior[0], got[0])
	assert.Equal(t, enrollment.Record{FirstName: "John", LastName: "Smith", CourseName: "CS101"}, got[1])

	want := PromptFirstName + PromptLastName + PromptCourseName +
		"You have registered John Smith for CS101.\n"
	assert.Equal(t, want, out.String())
}

func TestReadNewRecordCourseIsFreeForm(t *testing.T) {
	c, _ := newTestConsole("Jane\nDoe\nPython 101: Intro (Part 2)\n")

	got := c.ReadNewRecord(nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Python 101: Intro (Part 2)", got[0].CourseName)
}

func TestReadNewRecordRejectsNames(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrompt bool // whether the last name was asked for
	}{
		{name: "digit in first name", input: "John3\nSmith\nCS101\n", wantPrompt: false},
		{name: "empty first name", input: "\nSmith\nCS101\n", wantPrompt: false},
		{name: "digit in last name", input: "John\nSm1th\nCS101\n", wantPrompt: true},
		{name: "space in last name", input: "John\nvan Dyke\nCS101\n", wantPrompt: true},
		{name: "trailing space in first name", input: "John \nSmith\nCS101\n", wantPrompt: false},
		{name: "leading space in last name", input: "John\n Smith\nCS101\n", wantPrompt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior := []enrollment.Record{{FirstName: "Ada", LastName: "Lovelace", CourseName: "Math"}}
			c, out := newTestConsole(tt.input)

			got := c.ReadNewRecord(prior)

			assert.Equal(t, prior, got)
			assert.Len(t, got, 1)
			assert.Contains(t, out.String(), MsgInvalidName)
			assert.Contains(t, out.String(), TechnicalHeader)
			assert.Contains(t, out.String(), string(enrollment.KindInvalidName))
			assert.NotContains(t, out.String(), PromptCourseName)
			assert.NotContains(t, out.String(), "You have registered")
			assert.Equal(t, tt.wantPrompt, strings.Contains(out.String(), PromptLastName))
		})
	}
}

func TestReadNewRecordEndOfInput(t *testing.T) {
	c, out := newTestConsole("John\n")

	got := c.ReadNewRecord(nil)

	assert.Empty(t, got)
	assert.Contains(t, out.String(), MsgAddFailed)
	assert.Contains(t, out.String(), "console.read")
}

func TestDisplayRecords(t *testing.T) {
	sep := strings.Repeat("-", DefaultWidth)

	t.Run("empty", func(t *testing.T) {
		c, out := newTestConsole("")
		c.DisplayRecords(nil)
		assert.Equal(t, sep+"\n"+sep+"\n", out.String())
	})

	t.Run("records in order", func(t *testing.T) {
		c, out := newTestConsole("")
		c.DisplayRecords([]enrollment.Record{
			{FirstName: "John", LastName: "Smith", CourseName: "CS101"},
			{FirstName: "Ada", LastName: "Lovelace", CourseName: "Math"},
		})
		want := sep + "\n" +
			"Student John Smith is enrolled in CS101\n" +
			"Student Ada Lovelace is enrolled in Math\n" +
			sep + "\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("custom width", func(t *testing.T) {
		c, out := newTestConsole("", WithWidth(10))
		c.DisplayRecords(nil)
		assert.Equal(t, "----------\n----------\n", out.String())
	})

	t.Run("non-positive width ignored", func(t *testing.T) {
		c, out := newTestConsole("", WithWidth(0))
		c.DisplayRecords(nil)
		assert.Equal(t, sep+"\n"+sep+"\n", out.String())
	})
}

func TestReportError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		c, out := newTestConsole("")
		c.ReportError("Something went wrong", nil)
		assert.Equal(t, "Something went wrong\n\n", out.String())
	})

	t.Run("with domain error", func(t *testing.T) {
		c, out := newTestConsole("")
		err := &enrollment.Error{Op: "store.open", Kind: enrollment.KindNotFound, Path: "x.json", Err: errors.New("missing")}

		c.ReportError("Text file must exist", err)

		want := "Text file must exist\n\n" +
			TechnicalHeader + "\n" +
			err.Error() + "\n" +
			enrollment.Doc(err) + "\n" +
			"not_found\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("with foreign error", func(t *testing.T) {
		c, out := newTestConsole("")
		c.ReportError("oops", errors.New("boom"))

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "boom", lines[3])
		assert.Equal(t, "*errors.errorString", lines[5])
	})
}

func TestRenderMenu(t *testing.T) {
	c, out := newTestConsole("")
	c.RenderMenu("menu text")
	assert.Equal(t, "menu text\n\n", out.String())
}

func TestSequentialPromptsShareInput(t *testing.T) {
	c, _ := newTestConsole("1\nJohn\nSmith\nCS101\n2\n")

	assert.Equal(t, ChoiceRegister, c.ReadMenuChoice())
	records := c.ReadNewRecord(nil)
	require.Len(t, records, 1)
	assert.Equal(t, ChoiceShow, c.ReadMenuChoice())
	assert.Equal(t, ChoiceExit, c.ReadMenuChoice())
}

func TestReadMenuChoiceReadFailure(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(iotest.ErrReader(errors.New("device gone")), out)

	assert.Equal(t, ChoiceExit, c.ReadMenuChoice())
	assert.Contains(t, out.String(), MsgChoiceFailed)
	assert.Contains(t, out.String(), "console.read: io: device gone")
}
