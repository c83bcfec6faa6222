package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v2"
)

var (
	log = logrus.WithField("module", "input")

	ErrNoSchedule = errors.New("no schedule configured: set `schedule` or `input.schedule`")
)

const mongoTimeout = 30 * time.Second

// Init 加载信控方案
// 功能：按优先级从内联配置、YAML文件或MongoDB中读取信控方案配置
// 参数：c-配置对象
// 返回：方案配置
// 算法说明：
// 1. 内联：配置文件中的schedule字段
// 2. 文件：input.schedule.file，布局与schedule字段相同
// 3. 数据库：input.uri + input.schedule.db/col，name非空时按name筛选
// 说明：只在启动时读取一次，运行期间不再重新加载
func Init(c config.Config) (*config.ScheduleConfig, error) {
	if c.Schedule != nil {
		log.Info("use inline schedule")
		return c.Schedule, nil
	}
	path := c.Input.Schedule
	if path == nil {
		return nil, ErrNoSchedule
	}
	if path.File != "" {
		return loadFile(path.File)
	}
	if c.Input.URI == "" {
		return nil, fmt.Errorf("schedule from %s.%s needs input.uri", path.DB, path.Col)
	}
	return loadMongo(c.Input.URI, *path)
}

func loadFile(file string) (*config.ScheduleConfig, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	var s config.ScheduleConfig
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parse schedule file %s: %w", file, err)
	}
	log.Infof("load schedule from %s", file)
	return &s, nil
}

func loadMongo(uri string, path config.InputPath) (*config.ScheduleConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	client := mongoutil.NewClient(uri)
	defer client.Disconnect(context.Background())

	coll := mongoutil.GetMongoColl(client, path)
	log.Infof("start fetching from %s.%s", path.DB, path.Col)
	var s config.ScheduleConfig
	if err := coll.FindOne(ctx, scheduleFilter(path)).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no schedule %q in %s.%s", path.Name, path.DB, path.Col)
		}
		return nil, fmt.Errorf("fetch schedule from %s.%s: %w", path.DB, path.Col, err)
	}
	log.Infof("finish fetching from %s.%s", path.DB, path.Col)
	return &s, nil
}

// scheduleFilter name为空时匹配任意方案
func scheduleFilter(path config.InputPath) bson.M {
	if path.Name == "" {
		return bson.M{}
	}
	return bson.M{"name": path.Name}
}
