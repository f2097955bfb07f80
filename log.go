package rangebar

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger returns a logger that drops everything. Range bars log to it
// until SetLogger is called.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
