package logpuzzle

import "github.com/sirupsen/logrus"

func (d *Downloader) logf(format string, args ...interface{}) {
	if d.EnableLog {
		logrus.Printf(format, args...)
	}
}
