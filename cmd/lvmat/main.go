// SPDX-License-Identifier: MIT

// Command lvmat evaluates matrix operations on YAML grid files.
//
//	lvmat det a.yaml
//	lvmat inv --singular-tol 1e-12 --check a.yaml
//	lvmat mul --output yaml a.yaml b.yaml > c.yaml
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("lvmat failed")
		os.Exit(1)
	}
}
