package sumo

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "sumo")
