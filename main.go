package main

import (
	"encoding/base64"
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/task"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/input"
	"gopkg.in/yaml.v2"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "fixed-timer")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var c config.Config
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	} else {
		log.Panic("config file or config data must be specified")
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Panicf("config file load err: %v", err)
	}
	log.Debugf("%+v", c)

	// 信控方案
	sc, err := input.Init(c)
	if err != nil {
		log.Panicf("schedule load err: %v", err)
	}
	schedule, err := trafficlight.NewSchedule(*sc)
	if err != nil {
		log.Panicf("invalid schedule: %v", err)
	}
	log.Infof("schedule: %d phases, %d intersections", schedule.Len(), len(schedule.Intersections()))

	log.Info("starting SUMO with traffic light control...")
	t := task.NewContext(c, schedule, task.StartSumo)
	if err := t.Run(); err != nil {
		os.Exit(1)
	}
}
