package cmd

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"

	tendermint "github.com/hyperledger-labs/yui-path-relayer/chains/tendermint/module"
)

func TestModulePathVersion(t *testing.T) {
	m := tendermint.Module{}

	path, version, err := modulePathVersion(&debug.BuildInfo{
		Main: debug.Module{Path: "github.com/hyperledger-labs/yui-path-relayer", Version: "(devel)"},
	}, m)
	require.NoError(t, err)
	require.Equal(t, "github.com/hyperledger-labs/yui-path-relayer", path)
	require.Equal(t, "(devel)", version)

	path, version, err = modulePathVersion(&debug.BuildInfo{
		Main: debug.Module{Path: "example.com/relayer-app", Version: "v0.1.0"},
		Deps: []*debug.Module{
			{Path: "github.com/cosmos/cosmos-sdk", Version: "v0.50.5"},
			{Path: "github.com/hyperledger-labs/yui-path-relayer", Version: "v1.2.0"},
		},
	}, m)
	require.NoError(t, err)
	require.Equal(t, "github.com/hyperledger-labs/yui-path-relayer", path)
	require.Equal(t, "v1.2.0", version)

	_, _, err = modulePathVersion(&debug.BuildInfo{
		Main: debug.Module{Path: "example.com/relayer-app"},
	}, m)
	require.Error(t, err)
}

func TestModuleCapabilities(t *testing.T) {
	require.Equal(t, []string{"query"}, moduleCapabilities(tendermint.Module{}))
}
