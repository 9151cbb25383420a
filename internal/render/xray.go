package render

// Xray config schema: protocol field plus per-inbound settings object.

type xrayDoc struct {
	Log       xrayLog        `json:"log"`
	Inbounds  []xrayInbound  `json:"inbounds"`
	Outbounds []xrayOutbound `json:"outbounds"`
}

type xrayLog struct {
	Loglevel string `json:"loglevel"`
}

type xrayInbound struct {
	Tag      string       `json:"tag"`
	Listen   string       `json:"listen"`
	Port     int          `json:"port"`
	Protocol string       `json:"protocol"`
	Settings xraySettings `json:"settings"`
}

type xraySettings struct {
	Auth string `json:"auth,omitempty"`
	UDP  bool   `json:"udp,omitempty"`
}

type xrayOutbound struct {
	Tag      string `json:"tag"`
	Protocol string `json:"protocol"`
}

func xrayConfig(t Target) xrayDoc {
	return xrayDoc{
		Log: xrayLog{Loglevel: "warning"},
		Inbounds: []xrayInbound{
			{
				Tag:      "socks-in",
				Listen:   loopback,
				Port:     t.SocksPort,
				Protocol: "socks",
				Settings: xraySettings{Auth: "noauth", UDP: true},
			},
			{
				Tag:      "http-in",
				Listen:   loopback,
				Port:     t.HTTPPort,
				Protocol: "http",
			},
		},
		Outbounds: []xrayOutbound{
			{Tag: "direct", Protocol: "freedom"},
		},
	}
}
