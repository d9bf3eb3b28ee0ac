package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	if err := NewRootCmd(newService).Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}
