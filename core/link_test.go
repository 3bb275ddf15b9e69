package core

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var richCoins = sdk.NewCoins(sdk.NewInt64Coin("stake", 10_000_000))

func expectBalances(client *MockChainClient, coins sdk.Coins) {
	client.EXPECT().QueryBalance(gomock.Any(), gomock.Any(), "cosmos1relayer").Return(coins, nil).AnyTimes()
}

func TestCreateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	link := NewMockLink(ctrl)
	store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))

	expectBalances(client, richCoins)
	handleA, handleB := fakeHandle{"ibc0"}, fakeHandle{"ibc1"}
	gomock.InOrder(
		client.EXPECT().ConnectWithSigner(gomock.Any(), testChain("ibc0", "0.025stake"), fakeSigner{}).Return(handleA, nil),
		client.EXPECT().ConnectWithSigner(gomock.Any(), testChain("ibc1", "0.025stake"), fakeSigner{}).Return(handleB, nil),
		client.EXPECT().CreateLinkWithNewConnections(gomock.Any(), handleA, handleB).Return(link, nil),
		link.EXPECT().Connections().Return(Connections{SrcConnection: "connection-3", DestConnection: "connection-7"}),
		link.EXPECT().CreateChannel(gomock.Any(), SideA, TransferPort, TransferPort, chantypes.UNORDERED, TransferVersion).
			Return(&ChannelPair{SrcChannelID: "channel-2", DestChannelID: "channel-5"}, nil),
	)

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.NoError(t, err)

	pc := store.path("p1")
	require.True(t, pc.Path.IsLinked)
	require.Equal(t, "channel-2", pc.Path.Src.ChannelID)
	require.Equal(t, "channel-5", pc.Path.Dst.ChannelID)
	require.Equal(t, &Connections{SrcConnection: "connection-3", DestConnection: "connection-7"}, pc.Connections)
	require.Nil(t, pc.RelayerData)
	require.Equal(t, 1, store.mutationCount())
}

func TestCreateLinkUsesPathOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	link := NewMockLink(ctrl)
	pc := unlinkedPath("p1", "ibc0", "ibc1")
	pc.Options = &ConnectOptions{
		SourcePort:    "oracle",
		SourceVersion: "oracle-1",
		TargetPort:    "consumer",
		TargetVersion: "consumer-1",
		Ordering:      "ORDERED",
	}
	store := newMemConfig(testConfig(pc))

	expectBalances(client, richCoins)
	client.EXPECT().ConnectWithSigner(gomock.Any(), gomock.Any(), gomock.Any()).Return(fakeHandle{}, nil).Times(2)
	client.EXPECT().CreateLinkWithNewConnections(gomock.Any(), gomock.Any(), gomock.Any()).Return(link, nil)
	link.EXPECT().Connections().Return(Connections{SrcConnection: "connection-0", DestConnection: "connection-0"})
	link.EXPECT().CreateChannel(gomock.Any(), SideA, "oracle", "consumer", chantypes.ORDERED, "consumer-1").
		Return(&ChannelPair{SrcChannelID: "channel-0", DestChannelID: "channel-0"}, nil)

	require.NoError(t, NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1"))
	require.True(t, store.path("p1").Linked())
}

func TestCreateLinkInsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	cfg := testConfig(unlinkedPath("p1", "ibc0", "ibc1"))
	cfg.Chains[1].GasPrice = "0.1uatom"
	store := newMemConfig(cfg)

	client.EXPECT().QueryBalance(gomock.Any(), cfg.Chains[0], gomock.Any()).Return(richCoins, nil).AnyTimes()
	client.EXPECT().QueryBalance(gomock.Any(), cfg.Chains[1], gomock.Any()).Return(sdk.NewCoins(sdk.NewInt64Coin("uatom", 100)), nil)

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.ErrorContains(t, err, "225600uatom (ibc1)")

	require.False(t, store.path("p1").Linked())
	require.Zero(t, store.mutationCount())
}

func TestCreateLinkBalanceQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))

	client.EXPECT().QueryBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.ErrorContains(t, err, "rpc down")
	require.Zero(t, store.mutationCount())
}

func TestCreateLinkConnectionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))

	expectBalances(client, richCoins)
	client.EXPECT().ConnectWithSigner(gomock.Any(), gomock.Any(), gomock.Any()).Return(fakeHandle{}, nil).Times(2)
	client.EXPECT().CreateLinkWithNewConnections(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("client creation timed out"))

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.ErrorIs(t, err, ErrConnectionFailed)
	require.ErrorContains(t, err, "client creation timed out")
	require.False(t, store.path("p1").Linked())
	require.Zero(t, store.mutationCount())
}

func TestCreateLinkChannelFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	link := NewMockLink(ctrl)
	store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))

	expectBalances(client, richCoins)
	client.EXPECT().ConnectWithSigner(gomock.Any(), gomock.Any(), gomock.Any()).Return(fakeHandle{}, nil).Times(2)
	client.EXPECT().CreateLinkWithNewConnections(gomock.Any(), gomock.Any(), gomock.Any()).Return(link, nil)
	link.EXPECT().Connections().Return(Connections{SrcConnection: "connection-0", DestConnection: "connection-0"})
	link.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("counterparty version mismatch"))

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.ErrorIs(t, err, ErrChannelFailed)
	require.ErrorContains(t, err, "counterparty version mismatch")

	pc := store.path("p1")
	require.False(t, pc.Linked())
	require.Empty(t, pc.Path.Src.ChannelID)
	require.Nil(t, pc.Connections)
	require.Zero(t, store.mutationCount())
}

func TestCreateLinkPreconditions(t *testing.T) {
	t.Run("already linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newMemConfig(testConfig(linkedPath("p1", "ibc0", "ibc1")))
		err := NewPathLinker(store, NewMockChainClient(ctrl), &fakeKeyring{}).CreateLink(context.Background(), "p1")
		require.ErrorIs(t, err, ErrPathAlreadyLinked)
	})
	t.Run("unknown path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))
		err := NewPathLinker(store, NewMockChainClient(ctrl), &fakeKeyring{}).CreateLink(context.Background(), "p2")
		require.ErrorIs(t, err, ErrPathNotFound)
	})
	t.Run("unknown chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := testConfig()
		cfg.Chains = cfg.Chains[:1]
		cfg.Paths = []PathConfig{unlinkedPath("p1", "ibc0", "ibc1")}
		// bypass validation of the fixture
		store := &memConfig{cfg: cfg}
		err := NewPathLinker(store, NewMockChainClient(ctrl), &fakeKeyring{}).CreateLink(context.Background(), "p1")
		require.ErrorIs(t, err, ErrChainNotFound)
	})
	t.Run("no mnemonic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := testConfig(unlinkedPath("p1", "ibc0", "ibc1"))
		cfg.Mnemonic = ""
		store := newMemConfig(cfg)
		err := NewPathLinker(store, NewMockChainClient(ctrl), &fakeKeyring{}).CreateLink(context.Background(), "p1")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestCreateLinkLinkedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockChainClient(ctrl)
	link := NewMockLink(ctrl)
	store := newMemConfig(testConfig(unlinkedPath("p1", "ibc0", "ibc1")))

	expectBalances(client, richCoins)
	client.EXPECT().ConnectWithSigner(gomock.Any(), gomock.Any(), gomock.Any()).Return(fakeHandle{}, nil).Times(2)
	client.EXPECT().CreateLinkWithNewConnections(gomock.Any(), gomock.Any(), gomock.Any()).Return(link, nil)
	link.EXPECT().Connections().Return(Connections{SrcConnection: "connection-9", DestConnection: "connection-9"})
	link.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, Side, string, string, chantypes.Order, string) (*ChannelPair, error) {
			// another process links the path during the handshake
			require.NoError(t, store.Mutate(func(c *RelayerConfig) error {
				pc, _ := c.PathByID("p1")
				*pc = linkedPath("p1", "ibc0", "ibc1")
				return nil
			}))
			return &ChannelPair{SrcChannelID: "channel-9", DestChannelID: "channel-9"}, nil
		})

	err := NewPathLinker(store, client, &fakeKeyring{}).CreateLink(context.Background(), "p1")
	require.ErrorIs(t, err, ErrPathAlreadyLinked)

	// the first link is kept
	pc := store.path("p1")
	require.Equal(t, "channel-0", pc.Path.Src.ChannelID)
	require.Equal(t, "connection-0", pc.Connections.SrcConnection)
}

func TestChainLocksOrder(t *testing.T) {
	locks := newChainLocks()
	unlock := locks.lock("ibc1", "ibc0", "ibc1")

	acquired := make(chan struct{})
	go func() {
		release := locks.lock("ibc0")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not released")
	}
}
