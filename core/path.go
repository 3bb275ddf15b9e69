package core

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

const (
	TransferPort      = "transfer"
	TransferVersion   = "ics20-1"
	OrderingUnordered = "ORDER_UNORDERED"
	OrderingOrdered   = "ORDER_ORDERED"
)

// PathConfig is a path together with the state the relayer keeps for it
type PathConfig struct {
	Path        Path            `yaml:"path" json:"path" toml:"path"`
	Options     *ConnectOptions `yaml:"options,omitempty" json:"options,omitempty" toml:"options,omitempty"`
	Connections *Connections    `yaml:"connections,omitempty" json:"connections,omitempty" toml:"connections,omitempty"`
	RelayerData *PacketHeights  `yaml:"relayerData,omitempty" json:"relayerData,omitempty" toml:"relayerData,omitempty"`
}

// Path represents a pair of chain endpoints between which packets are relayed
type Path struct {
	ID       string  `yaml:"id" json:"id" toml:"id"`
	IsLinked bool    `yaml:"isLinked" json:"isLinked" toml:"isLinked"`
	Src      PathEnd `yaml:"src" json:"src" toml:"src"`
	Dst      PathEnd `yaml:"dst" json:"dst" toml:"dst"`
}

// PathEnd represents the chain at one side of a Path
type PathEnd struct {
	ChainID   string `yaml:"chainID" json:"chainID" toml:"chainID"`
	PortID    string `yaml:"portID" json:"portID" toml:"portID"`
	ChannelID string `yaml:"channelID,omitempty" json:"channelID,omitempty" toml:"channelID,omitempty"`
}

// ConnectOptions holds the channel parameters used when the path is linked
type ConnectOptions struct {
	SourcePort    string `yaml:"sourcePort" json:"sourcePort" toml:"sourcePort"`
	SourceVersion string `yaml:"sourceVersion" json:"sourceVersion" toml:"sourceVersion"`
	TargetPort    string `yaml:"targetPort" json:"targetPort" toml:"targetPort"`
	TargetVersion string `yaml:"targetVersion" json:"targetVersion" toml:"targetVersion"`
	Ordering      string `yaml:"ordering" json:"ordering" toml:"ordering"`
}

// Connections holds the connection ids created when the path was linked
type Connections struct {
	SrcConnection  string `yaml:"srcConnection" json:"srcConnection" toml:"srcConnection"`
	DestConnection string `yaml:"destConnection" json:"destConnection" toml:"destConnection"`
}

// PacketHeights is the relay checkpoint of a path
type PacketHeights struct {
	PacketHeightA uint64 `yaml:"packetHeightA" json:"packetHeightA" toml:"packetHeightA"`
	PacketHeightB uint64 `yaml:"packetHeightB" json:"packetHeightB" toml:"packetHeightB"`
	AckHeightA    uint64 `yaml:"ackHeightA" json:"ackHeightA" toml:"ackHeightA"`
	AckHeightB    uint64 `yaml:"ackHeightB" json:"ackHeightB" toml:"ackHeightB"`
}

// DefaultConnectOptions returns the options of an ics20 transfer channel
func DefaultConnectOptions() ConnectOptions {
	return ConnectOptions{
		SourcePort:    TransferPort,
		SourceVersion: TransferVersion,
		TargetPort:    TransferPort,
		TargetVersion: TransferVersion,
		Ordering:      OrderingUnordered,
	}
}

// ChannelOrder parses the ordering of the options
func (o ConnectOptions) ChannelOrder() (chantypes.Order, error) {
	order := OrderFromString(o.Ordering)
	if order == chantypes.NONE {
		return order, errorsmod.Wrapf(ErrInvalidConfig, "invalid channel ordering %q", o.Ordering)
	}
	return order, nil
}

// OrderFromString parses a string into a channel order.
// Both "ORDERED" and "ORDER_ORDERED" forms are accepted.
func OrderFromString(order string) chantypes.Order {
	switch strings.TrimPrefix(strings.ToUpper(order), "ORDER_") {
	case "UNORDERED":
		return chantypes.UNORDERED
	case "ORDERED":
		return chantypes.ORDERED
	default:
		return chantypes.NONE
	}
}

// ConnectOptionsOrDefault returns the options of the path, falling back to the defaults
func (pc PathConfig) ConnectOptionsOrDefault() ConnectOptions {
	if pc.Options == nil {
		return DefaultConnectOptions()
	}
	return *pc.Options
}

// Linked reports whether the path is linked
func (pc PathConfig) Linked() bool {
	return pc.Path.IsLinked
}

// Checkpoint returns the relay checkpoint, or zero heights if nothing was relayed yet
func (pc PathConfig) Checkpoint() PacketHeights {
	if pc.RelayerData == nil {
		return PacketHeights{}
	}
	return *pc.RelayerData
}

// Validate checks the path config, including the linked invariant
func (pc PathConfig) Validate() error {
	p := pc.Path
	if p.ID == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "path id must not be empty")
	}
	if p.Src.ChainID == "" || p.Dst.ChainID == "" {
		return errorsmod.Wrapf(ErrInvalidConfig, "path %s: both ends must specify a chain id", p.ID)
	}
	if pc.Options != nil {
		if _, err := pc.Options.ChannelOrder(); err != nil {
			return errorsmod.Wrapf(err, "path %s", p.ID)
		}
	}
	if p.IsLinked {
		if p.Src.ChannelID == "" || p.Dst.ChannelID == "" || pc.Connections == nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "path %s: linked path must have channels and connections", p.ID)
		}
	} else if pc.Connections != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "path %s: unlinked path must not have connections", p.ID)
	}
	return nil
}

// Merge returns the field-wise maximum of the two checkpoints, so a stale
// checkpoint never moves a height backwards.
func (h PacketHeights) Merge(other PacketHeights) PacketHeights {
	return PacketHeights{
		PacketHeightA: max(h.PacketHeightA, other.PacketHeightA),
		PacketHeightB: max(h.PacketHeightB, other.PacketHeightB),
		AckHeightA:    max(h.AckHeightA, other.AckHeightA),
		AckHeightB:    max(h.AckHeightB, other.AckHeightB),
	}
}

func (p Path) String() string {
	return fmt.Sprintf("%s: %s[%s/%s] -> %s[%s/%s]", p.ID,
		p.Src.ChainID, p.Src.PortID, p.Src.ChannelID,
		p.Dst.ChainID, p.Dst.PortID, p.Dst.ChannelID,
	)
}
