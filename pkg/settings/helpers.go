package settings

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (s Setting) GetBool() bool {
	v, err := strconv.ParseBool(s.Get())
	if err != nil {
		logrus.Debugf("Setting %s is not a boolean: %v", s.Name, err)
		return false
	}
	return v
}

// ApplyLogLevel sets the logrus level from the log-level setting.
func ApplyLogLevel() error {
	level, err := logrus.ParseLevel(LogLevel.Get())
	if err != nil {
		return errors.Wrapf(err, "failed to parse setting %s", LogLevel.Name)
	}
	logrus.SetLevel(level)
	return nil
}
