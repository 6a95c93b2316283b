package format

import (
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/sirupsen/logrus"
)

var _ log.Formatter = new(JSONFormatter)

// JSONFormatter writes one JSON object per entry using logrus' own encoder.
type JSONFormatter struct {
	inner *logrus.JSONFormatter
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		inner: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "msg",
			},
		},
	}
}

// Format implements log.Formatter.
func (formatter *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	return formatter.inner.Format(entry.Entry)
}
