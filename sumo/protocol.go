package sumo

// bridge端点
const (
	endpointIDs        = "trafficlights.ids"
	endpointSetProgram = "trafficlights.set_program"
	endpointSetState   = "trafficlights.set_state"
	endpointGetState   = "trafficlights.get_state"
	endpointStep       = "step"
	endpointMinExpect  = "min_expected"
	endpointStop       = "stop"
)

// 响应中的错误类别
const (
	kindRejected = "rejected"
	kindFatal    = "fatal"
)

// 接管控制时切换到的程序，对应SUMO中不带静态逻辑的离线程序
const offlineProgram = "0"

type request struct {
	Endpoint string         `msgpack:"endpoint"`
	Params   map[string]any `msgpack:"params,omitempty"`
}

type response struct {
	Error string   `msgpack:"error,omitempty"`
	Kind  string   `msgpack:"kind,omitempty"`
	IDs   []string `msgpack:"ids,omitempty"`
	State string   `msgpack:"state,omitempty"`
	Count int      `msgpack:"count,omitempty"`
}
