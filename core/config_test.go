package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRPCAddr(t *testing.T) {
	tests := map[string]string{
		"http://ibc0:26657":       "http://ibc0:26657",
		"http://ibc0:26657/":      "http://ibc0:26657",
		"  http://ibc0:26657//  ": "http://ibc0:26657",
		"ibc0:26657":              "http://ibc0:26657",
		"http://ibc0":             "http://ibc0:80",
		"https://rpc.example.com": "https://rpc.example.com:443",
		"HTTPS://rpc.example.com": "https://rpc.example.com:443",
		"tcp://127.0.0.1:26657":   "tcp://127.0.0.1:26657",
		"http://[::1]":            "http://[::1]:80",
		"":                        "",
	}
	for in, want := range tests {
		require.Equal(t, want, NormalizeRPCAddr(in), in)
	}
}
