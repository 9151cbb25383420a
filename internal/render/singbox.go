package render

// sing-box config schema: type field plus tagged route section.

type singBoxDoc struct {
	Log       singBoxLog        `json:"log"`
	Inbounds  []singBoxInbound  `json:"inbounds"`
	Outbounds []singBoxOutbound `json:"outbounds"`
	Route     singBoxRoute      `json:"route"`
}

type singBoxLog struct {
	Level     string `json:"level"`
	Timestamp bool   `json:"timestamp"`
}

type singBoxInbound struct {
	Type       string `json:"type"`
	Tag        string `json:"tag"`
	Listen     string `json:"listen"`
	ListenPort int    `json:"listen_port"`
}

type singBoxOutbound struct {
	Type string `json:"type"`
	Tag  string `json:"tag"`
}

type singBoxRoute struct {
	Final string `json:"final"`
}

func singBoxConfig(t Target) singBoxDoc {
	return singBoxDoc{
		Log: singBoxLog{Level: "warn", Timestamp: true},
		Inbounds: []singBoxInbound{
			{Type: "socks", Tag: "socks-in", Listen: loopback, ListenPort: t.SocksPort},
			{Type: "http", Tag: "http-in", Listen: loopback, ListenPort: t.HTTPPort},
		},
		Outbounds: []singBoxOutbound{
			{Type: "direct", Tag: "direct"},
		},
		Route: singBoxRoute{Final: "direct"},
	}
}
