package coreutil

import (
	"fmt"

	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/otelcore"
)

// UnwrapChainClient finds the first value in the chain of decorators around c
// that matches the specified type argument.
//
// In the following example, UnwrapChainClient returns the *module.Client
// wrapped by the tracing decorator:
//
//	client, err := coreutil.UnwrapChainClient[*module.Client](client)
func UnwrapChainClient[C core.ChainClient](c core.ChainClient) (C, error) {
	client := c
	for {
		switch unwrapped := client.(type) {
		case *otelcore.ChainClient:
			client = unwrapped.ChainClient
		case C:
			return unwrapped, nil
		default:
			var zero C
			return zero, fmt.Errorf("failed to unwrap chain client: expected=%T, actual=%T", zero, unwrapped)
		}
	}
}

// UnwrapLink finds the first value in the chain of decorators around l
// that matches the specified type argument.
func UnwrapLink[L core.Link](l core.Link) (L, error) {
	link := l
	for {
		switch unwrapped := link.(type) {
		case *otelcore.Link:
			link = unwrapped.Link
		case L:
			return unwrapped, nil
		default:
			var zero L
			return zero, fmt.Errorf("failed to unwrap link: expected=%T, actual=%T", zero, unwrapped)
		}
	}
}
