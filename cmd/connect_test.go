package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/signer"
)

func newConnectRelayer(t *testing.T, paths ...core.PathConfig) (*core.Relayer, *core.MockChainClient) {
	store, err := config.New(filepath.Join(t.TempDir(), config.DefaultConfigFile))
	require.NoError(t, err)

	keyring := signer.NewKeyring()
	mnemonic, err := keyring.NewMnemonic()
	require.NoError(t, err)
	require.NoError(t, store.Mutate(func(c *core.RelayerConfig) error {
		c.Mnemonic = mnemonic
		for _, id := range []string{"ibc0", "ibc1"} {
			c.Chains = append(c.Chains, core.ChainConfig{
				ChainID:       id,
				Account:       core.DefaultAccount,
				RPCAddr:       "http://" + id + ":26657",
				AddressPrefix: core.DefaultAddressPrefix,
				GasPrice:      core.DefaultGasPrice,
				GasLimit:      core.DefaultGasLimit,
			})
		}
		c.Paths = paths
		return nil
	}))

	client := core.NewMockChainClient(gomock.NewController(t))
	return core.NewRelayer(store, client, keyring, core.DefaultOptions()), client
}

func connectPath(id string, linked bool) core.PathConfig {
	pc := core.PathConfig{
		Path: core.Path{
			ID:  id,
			Src: core.PathEnd{ChainID: "ibc0", PortID: core.TransferPort},
			Dst: core.PathEnd{ChainID: "ibc1", PortID: core.TransferPort},
		},
	}
	if linked {
		pc.Path.IsLinked = true
		pc.Path.Src.ChannelID = "channel-0"
		pc.Path.Dst.ChannelID = "channel-1"
		pc.Connections = &core.Connections{SrcConnection: "connection-0", DestConnection: "connection-1"}
	}
	return pc
}

func runConnect(t *testing.T, ctx context.Context, r *core.Relayer, args ...string) (core.LinkResponse, error) {
	cmd := connectCmd(&config.Context{})
	require.NoError(t, cmd.ParseFlags(nil))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetContext(ctx)

	err := connectPaths(cmd, r, args)
	var res core.LinkResponse
	if buf.Len() > 0 {
		require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	}
	return res, err
}

func TestConnectAllPaths(t *testing.T) {
	r, client := newConnectRelayer(t, connectPath("p1", true), connectPath("p2", false))
	ctrl := gomock.NewController(t)
	handle := core.NewMockClientHandle(ctrl)
	handle.EXPECT().ChainID().Return("ibc0").AnyTimes()
	handle.EXPECT().Address().Return("cosmos1relayer").AnyTimes()
	link := core.NewMockLink(ctrl)
	link.EXPECT().RelayPendingPacketsAndAcks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&core.PacketHeights{}, nil).AnyTimes()
	link.EXPECT().UpdateClientIfStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// p2 fails its balance check, p1 is reopened and relayed
	client.EXPECT().QueryBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down")).AnyTimes()
	client.EXPECT().ConnectWithSigner(gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil).Times(2)
	client.EXPECT().CreateLinkWithExistingConnections(gomock.Any(), gomock.Any(), gomock.Any(), "connection-0", "connection-1").
		DoAndReturn(func(context.Context, core.ClientHandle, core.ClientHandle, string, string) (core.Link, error) {
			// interrupt once the relay loop is scheduled
			cancel()
			return link, nil
		})

	res, err := runConnect(t, ctx, r)
	require.NoError(t, err)
	require.Empty(t, res.LinkedPaths)
	require.Equal(t, []string{"p1"}, res.AlreadyLinkedPaths)
	require.Len(t, res.FailedToLinkPaths, 1)
	require.Equal(t, "p2", res.FailedToLinkPaths[0].PathName)
	require.Contains(t, res.FailedToLinkPaths[0].Error, "rpc down")

	// the command stops the relayer before returning
	require.Empty(t, r.Running())
}

func TestConnectNothingToRelay(t *testing.T) {
	r, client := newConnectRelayer(t, connectPath("p1", true), connectPath("p2", false))
	client.EXPECT().QueryBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down")).AnyTimes()

	// the context is never cancelled, the command must not block
	res, err := runConnect(t, context.Background(), r, "p2")
	require.NoError(t, err)
	require.Empty(t, res.LinkedPaths)
	require.Empty(t, res.AlreadyLinkedPaths)
	require.Len(t, res.FailedToLinkPaths, 1)
	require.Empty(t, r.Running())
}

func TestConnectWithoutPaths(t *testing.T) {
	r, _ := newConnectRelayer(t)

	_, err := runConnect(t, context.Background(), r)
	require.ErrorIs(t, err, core.ErrPathsNotDefined)
}
