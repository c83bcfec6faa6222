// SUMO bridge客户端
// bridge进程持有TraCI连接，本客户端通过unix socket（或TCP）以msgpack消息调用
package sumo

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrStartup         = errors.New("sumo: failed to start simulator")
	ErrRejectedState   = errors.New("sumo: traffic light state rejected")
	ErrFatalSimulation = errors.New("sumo: fatal simulation error")
)

// bridge收到stop后等待其退出的时长，超时则结束进程
const exitTimeout = 5 * time.Second

// Client 模拟器句柄
// 说明：非并发安全，只由控制循环使用
type Client struct {
	conn   net.Conn
	cmd    *exec.Cmd
	logs   []*io.PipeWriter // bridge进程stdout/stderr转发到日志
	closed bool
}

// NewClient 在已建立的连接上创建客户端
func NewClient(conn net.Conn) *Client {
	return &Client{conn: conn}
}

// Start 启动并连接模拟器
// 功能：如果配置了bridge程序则先启动进程，然后按配置重试连接
// 参数：c-模拟器连接配置（已补全默认值）
// 返回：客户端；失败时返回包装了ErrStartup的错误，已启动的进程会被结束
func Start(c config.Simulator) (*Client, error) {
	var (
		cmd  *exec.Cmd
		logs []*io.PipeWriter
	)
	if c.Binary != "" {
		var err error
		if cmd, logs, err = startProcess(c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStartup, err)
		}
	}
	conn, err := dial(c)
	if err != nil {
		if cmd != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			closeLogs(logs)
		}
		return nil, fmt.Errorf("%w: %v", ErrStartup, err)
	}
	log.Infof("connected to %s %s", c.Network, c.Address)
	client := NewClient(conn)
	client.cmd = cmd
	client.logs = logs
	return client, nil
}

// startProcess 启动bridge进程，输出按级别写入日志
// 返回的writer需要在进程结束后关闭
func startProcess(c config.Simulator) (*exec.Cmd, []*io.PipeWriter, error) {
	stdout := log.WriterLevel(logrus.DebugLevel)
	stderr := log.WriterLevel(logrus.WarnLevel)
	logs := []*io.PipeWriter{stdout, stderr}
	cmd := exec.Command(c.Binary, c.Args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		closeLogs(logs)
		return nil, nil, fmt.Errorf("run %s: %w", c.Binary, err)
	}
	log.Infof("started %s (pid %d)", c.Binary, cmd.Process.Pid)
	return cmd, logs, nil
}

func closeLogs(logs []*io.PipeWriter) {
	for _, w := range logs {
		_ = w.Close()
	}
}

func dial(c config.Simulator) (net.Conn, error) {
	retries := max(c.ConnectRetries, 1)
	var lastErr error
	for i := range retries {
		conn, err := net.DialTimeout(c.Network, c.Address, c.RetryInterval)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		log.Debugf("connect %s %s failed (%d/%d): %v", c.Network, c.Address, i+1, retries, err)
		if i+1 < retries {
			time.Sleep(c.RetryInterval)
		}
	}
	return nil, fmt.Errorf("connect %s %s after %d retries: %w", c.Network, c.Address, retries, lastErr)
}

// call 发送请求并等待响应
// 说明：传输或编解码失败都视为模拟器故障
func (c *Client) call(endpoint string, params map[string]any) (*response, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: %s on closed client", ErrFatalSimulation, endpoint)
	}
	payload, err := msgpack.Marshal(&request{Endpoint: endpoint, Params: params})
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", ErrFatalSimulation, endpoint, err)
	}
	if err := writeFrame(c.conn, payload); err != nil {
		return nil, fmt.Errorf("%w: send %s: %v", ErrFatalSimulation, endpoint, err)
	}
	body, err := readFrame(c.conn)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFatalSimulation, endpoint, err)
	}
	var resp response
	if len(body) > 0 {
		if err := msgpack.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrFatalSimulation, endpoint, err)
		}
	}
	if resp.Error != "" {
		switch resp.Kind {
		case kindRejected:
			return nil, fmt.Errorf("%w: %s", ErrRejectedState, resp.Error)
		case kindFatal:
			return nil, fmt.Errorf("%w: %s: %s", ErrFatalSimulation, endpoint, resp.Error)
		default:
			// 未知类别按故障处理
			return nil, fmt.Errorf("%w: %s: unclassified error (kind %q): %s", ErrFatalSimulation, endpoint, resp.Kind, resp.Error)
		}
	}
	return &resp, nil
}

// TrafficLightIDs 路网中所有信号灯ID
func (c *Client) TrafficLightIDs() ([]string, error) {
	resp, err := c.call(endpointIDs, nil)
	if err != nil {
		return nil, err
	}
	return resp.IDs, nil
}

// TakeControl 将信号灯切换到离线程序，不再执行SUMO的静态信控逻辑
func (c *Client) TakeControl(id string) error {
	_, err := c.call(endpointSetProgram, map[string]any{"id": id, "program": offlineProgram})
	return err
}

// SetSignalState 设置红黄绿信号字符串
func (c *Client) SetSignalState(id string, state string) error {
	_, err := c.call(endpointSetState, map[string]any{"id": id, "state": state})
	return err
}

// GetSignalState 读取当前红黄绿信号字符串
func (c *Client) GetSignalState(id string) (string, error) {
	resp, err := c.call(endpointGetState, map[string]any{"id": id})
	if err != nil {
		return "", err
	}
	return resp.State, nil
}

// Step 推进一步
func (c *Client) Step() error {
	_, err := c.call(endpointStep, nil)
	return err
}

// MinExpectedNumber 路网中及等待进入路网的车辆数，为0表示模拟已无事可做
func (c *Client) MinExpectedNumber() (int, error) {
	resp, err := c.call(endpointMinExpect, nil)
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Close 通知bridge结束并释放连接与进程
// 说明：可重复调用，只有第一次生效
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	var errs []error
	if _, err := c.call(endpointStop, nil); err != nil {
		errs = append(errs, err)
	}
	c.closed = true
	if err := c.conn.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.cmd != nil {
		if err := waitProcess(c.cmd, exitTimeout); err != nil {
			errs = append(errs, fmt.Errorf("wait bridge process: %w", err))
		}
		closeLogs(c.logs)
	}
	return errors.Join(errs...)
}

func waitProcess(cmd *exec.Cmd, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		log.Warnf("bridge process %d did not exit in %v, killing", cmd.Process.Pid, timeout)
		_ = cmd.Process.Kill()
		return <-done
	}
}
