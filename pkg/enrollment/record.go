// Package enrollment defines the student-course enrollment record and the
// error model shared by the store, console and registration loop.
package enrollment

import (
	"fmt"
	"strings"
	"unicode"
)

// Record is a single student-course enrollment. The JSON keys are part of the
// on-disk format and must not change.
type Record struct {
	FirstName  string `json:"FirstName" jsonschema:"title=First name,description=Student first name (letters only),pattern=^\\p{L}+$"`
	LastName   string `json:"LastName" jsonschema:"title=Last name,description=Student last name (letters only),pattern=^\\p{L}+$"`
	CourseName string `json:"CourseName" jsonschema:"title=Course name,description=Name of the course the student is enrolled in,minLength=1"`
}

// String renders the record the way it is listed to the user.
func (r Record) String() string {
	return fmt.Sprintf("Student %s %s is enrolled in %s", r.FirstName, r.LastName, r.CourseName)
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ValidateName checks a first or last name. field is used in the error
// message, e.g. "first name".
func ValidateName(field, value string) error {
	if IsAlpha(value) {
		return nil
	}
	return &Error{
		Op:   "validate." + strings.ReplaceAll(field, " ", "_"),
		Kind: KindInvalidName,
		Err:  fmt.Errorf("the %s should not contain numbers", field),
	}
}

// Validate checks both names of the record. The course name is free-form.
func (r Record) Validate() error {
	if err := ValidateName("first name", r.FirstName); err != nil {
		return err
	}
	return ValidateName("last name", r.LastName)
}
