// Package store loads and saves the enrollment list as a JSON document.
package store

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/enroll/pkg/enrollment"
)

// DefaultFileName is the data file used when nothing else is configured.
const DefaultFileName = "enrollments.json"

// User-facing messages reported through the Reporter.
const (
	MsgFileMustExist = "Text file must exist before running this script!"
	MsgReadFailed    = "There was a non-specific error when reading the file!"
	MsgWriteFailed   = "There was a non-specific error!"
)

// Reporter receives failure messages and save feedback.
type Reporter interface {
	ReportError(message string, err error)
	DisplayRecords(records []enrollment.Record)
}

// FileProcessor moves the enrollment list between memory and a JSON file.
// It never aborts the caller: failures are reported and the in-memory list
// is left as it was.
type FileProcessor struct {
	reporter Reporter
	logger   *logrus.Entry
}

// NewFileProcessor creates a processor that reports through r.
func NewFileProcessor(r Reporter, logger *logrus.Entry) *FileProcessor {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &FileProcessor{reporter: r, logger: logger}
}

// LoadRecords replaces current with the contents of fileName. On any failure
// current is returned unchanged.
func (p *FileProcessor) LoadRecords(fileName string, current []enrollment.Record) []enrollment.Record {
	records, err := Read(fileName)
	if err != nil {
		p.logger.WithError(err).WithField("path", fileName).Debug("load failed")
		if enrollment.IsKind(err, enrollment.KindNotFound) {
			p.reporter.ReportError(MsgFileMustExist, err)
		} else {
			p.reporter.ReportError(MsgReadFailed, err)
		}
		return current
	}

	p.logger.WithFields(logrus.Fields{
		"path":    fileName,
		"records": len(records),
	}).Debug("loaded enrollments")
	return records
}

// SaveRecords overwrites fileName with records and displays what was saved.
func (p *FileProcessor) SaveRecords(fileName string, records []enrollment.Record) {
	if err := Write(fileName, records); err != nil {
		p.logger.WithError(err).WithField("path", fileName).Debug("save failed")
		if enrollment.IsKind(err, enrollment.KindNotFound) {
			p.reporter.ReportError(MsgFileMustExist, err)
		} else {
			p.reporter.ReportError(MsgWriteFailed, err)
		}
		return
	}

	p.logger.WithFields(logrus.Fields{
		"path":    fileName,
		"records": len(records),
	}).Debug("saved enrollments")
	p.reporter.DisplayRecords(records)
}

// Read parses fileName as a JSON array of enrollment records.
func Read(fileName string) (records []enrollment.Record, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, pathError("store.open", fileName, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			records, err = nil, pathError("store.close", fileName, cerr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, pathError("store.read", fileName, err)
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &enrollment.Error{
			Op:   "store.decode",
			Kind: enrollment.KindDecode,
			Path: fileName,
			Err:  err,
		}
	}
	if records == nil {
		records = []enrollment.Record{}
	}
	return records, nil
}

// Write creates or truncates fileName and encodes records into it as a JSON
// array. A nil slice is written as [].
func Write(fileName string, records []enrollment.Record) (err error) {
	if records == nil {
		records = []enrollment.Record{}
	}

	f, err := os.Create(fileName)
	if err != nil {
		return pathError("store.create", fileName, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = pathError("store.close", fileName, cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return pathError("store.encode", fileName, err)
	}
	return nil
}

func pathError(op, path string, err error) error {
	kind := enrollment.KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = enrollment.KindNotFound
	}
	return &enrollment.Error{Op: op, Kind: kind, Path: path, Err: err}
}
