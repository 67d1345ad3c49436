// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Net identifies one of the Keymaker networks.
type Net string

// The networks a node can be started on.
const (
	// MainNet is the production network.
	MainNet Net = "main"

	// TestNet is the public test network.
	TestNet Net = "test"

	// RegressionNet is the local regression test network.
	RegressionNet Net = "regtest"
)

// String returns the canonical name of the network.
func (n Net) String() string {
	return string(n)
}

// ParseNet returns the network identified by name.  Besides the canonical
// names it accepts "mainnet" and "testnet".  Any other name results in a
// ParamsError with the ErrUnknownNetwork code.
func ParseNet(name string) (Net, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegressionNet, nil
	}
	return "", paramsError(ErrUnknownNetwork, "ParseNet",
		"unknown network "+strconv.Quote(name))
}

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a hardcoded peer address used when DNS seeding yields nothing.
type FixedSeed struct {
	IP   net.IP
	Port uint16
}

// String returns the seed in host:port form.
func (s FixedSeed) String() string {
	return net.JoinHostPort(s.IP.String(), strconv.Itoa(int(s.Port)))
}

// NetAddress converts the seed into the address type used by the peer layer.
func (s FixedSeed) NetAddress(services wire.ServiceFlag) *wire.NetAddress {
	return wire.NewNetAddressIPPort(s.IP, s.Port, services)
}

// AddressKind enumerates the encodings that carry a network version prefix.
type AddressKind int

const (
	// PubKeyAddress is a base58 pay-to-pubkey-hash address.
	PubKeyAddress AddressKind = iota

	// ScriptAddress is a base58 pay-to-script-hash address.
	ScriptAddress

	// SecretKey is a WIF encoded private key.
	SecretKey

	// ExtPublicKey is a BIP32 extended public key.
	ExtPublicKey

	// ExtSecretKey is a BIP32 extended private key.
	ExtSecretKey
)

var addressKindStrings = map[AddressKind]string{
	PubKeyAddress: "pubkey",
	ScriptAddress: "script",
	SecretKey:     "secret-key",
	ExtPublicKey:  "extended-public",
	ExtSecretKey:  "extended-secret",
}

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	if s, ok := addressKindStrings[k]; ok {
		return s
	}
	return "unknown address kind " + strconv.Itoa(int(k))
}

// AddressPrefixes holds the version bytes a network prepends to its encoded
// addresses and keys.
//
// Prefixes of networks that may share a connection must not collide.  This
// package does not check that; it is up to whoever mixes networks.
type AddressPrefixes struct {
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte
}

// Prefix returns the version bytes for the given kind.  The returned slice is
// owned by the caller.  Unknown kinds yield nil.
func (a AddressPrefixes) Prefix(kind AddressKind) []byte {
	switch kind {
	case PubKeyAddress:
		return []byte{a.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{a.ScriptHashAddrID}
	case SecretKey:
		return []byte{a.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), a.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), a.HDPrivateKeyID[:]...)
	}
	return nil
}

// ChainTxData is a snapshot of chain activity used to estimate how far along
// a node is while syncing.  It plays no part in consensus.
type ChainTxData struct {
	// Time is the timestamp of the last block the snapshot covers.
	Time time.Time

	// TxCount is the total number of transactions up to that block.
	TxCount int64

	// TxRate is the estimated number of transactions per second after
	// Time.
	TxRate float64
}

// VerificationProgress estimates the fraction of the chain's transactions a
// node with the given tip has processed, in the range [0, 1].
func (d ChainTxData) VerificationProgress(tipTxCount int64, tipTime, now time.Time) float64 {
	var expected float64
	if tipTxCount <= d.TxCount {
		expected = float64(d.TxCount) + now.Sub(d.Time).Seconds()*d.TxRate
	} else {
		expected = float64(tipTxCount) + now.Sub(tipTime).Seconds()*d.TxRate
	}

	// Nothing is known to be missing.
	if expected <= 0 || float64(tipTxCount) >= expected {
		return 1
	}
	if tipTxCount <= 0 {
		return 0
	}
	return float64(tipTxCount) / expected
}

// ConsensusParams holds the tunable consensus constants of a network.
type ConsensusParams struct {
	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the window examined when the difficulty is
	// retargeted.
	TargetTimespan time.Duration

	// StakeTargetSpacing and PowTargetSpacing are the desired amounts of
	// time between proof-of-stake and proof-of-work blocks.
	StakeTargetSpacing time.Duration
	PowTargetSpacing   time.Duration

	// TargetSpacingWorkMax caps the spacing used for proof-of-work
	// retargeting.
	TargetSpacingWorkMax time.Duration

	// StakeMinConfirmations is the number of confirmations an output needs
	// before it can stake.
	StakeMinConfirmations int32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// DGWPastBlocks is the window size of the Dark Gravity Wave moving
	// average difficulty adjustment.
	DGWPastBlocks int32

	// These fields define the block heights at which the specified
	// softfork BIP became active.  Zero means active from genesis.
	BIP0016Height int32
	BIP0034Height int32
	BIP0034Hash   chainhash.Hash

	// StartMiningTime is the earliest timestamp a block may claim.
	StartMiningTime time.Time

	// Relaxations only used by test networks.
	PowAllowMinDifficultyBlocks bool
	PowNoRetargeting            bool

	// MinimumChainWork is the amount of work the best chain must carry
	// before the node trusts it during initial download.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block whose ancestors skip script
	// verification by default.
	DefaultAssumeValid chainhash.Hash

	// GenesisHash is the hash of the network's genesis block.  It is filled
	// in once the genesis block has been built and verified.
	GenesisHash chainhash.Hash
}

// Copy returns a deep copy of the consensus parameters.
func (c ConsensusParams) Copy() ConsensusParams {
	cp := c
	if c.PowLimit != nil {
		cp.PowLimit = new(big.Int).Set(c.PowLimit)
	}
	if c.MinimumChainWork != nil {
		cp.MinimumChainWork = new(big.Int).Set(c.MinimumChainWork)
	}
	return cp
}

// Params defines a Keymaker network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	// Net identifies the network.
	Net Net

	// Name defines a human-readable identifier for the network.
	Name string

	// Consensus holds the consensus constants.
	Consensus ConsensusParams

	// NetMagic defines the magic bytes used to identify the network.
	NetMagic wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the serialized key that signs network alerts.
	AlertPubKey []byte

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are peers to fall back to when DNS seeding fails.
	FixedSeeds []FixedSeed

	// Address encoding magics
	AddressPrefixes AddressPrefixes

	// Human-readable part for Bech32 encoded addresses.
	Bech32HRP string

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData is the activity snapshot used for progress estimates.
	ChainTxData ChainTxData

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// MiningRequiresPeers prevents block production while the node has
	// no peers.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks enables expensive internal checks.
	DefaultConsistencyChecks bool

	// RequireStandard rejects non-standard transactions from the mempool.
	RequireStandard bool

	// MineBlocksOnDemand allows blocks to be generated on request.
	MineBlocksOnDemand bool
}

// MessageStart returns the magic bytes in the order they appear on the wire.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.NetMagic))
	return start
}

// AlertKey parses the network's alert public key.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.AlertPubKey)
}

// Checkpoint returns the checkpoint at the given height, if there is one.
func (p *Params) Checkpoint(height int32) (chainhash.Hash, bool) {
	for _, c := range p.Checkpoints {
		if c.Height == height {
			return c.Hash, true
		}
		if c.Height > height {
			break
		}
	}
	return chainhash.Hash{}, false
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the
// network has none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	c := p.Checkpoints[len(p.Checkpoints)-1]
	return &c
}

// Copy returns a deep copy of the parameters.  Nothing reachable from the
// copy is shared with p.
func (p *Params) Copy() *Params {
	cp := *p
	cp.Consensus = p.Consensus.Copy()
	if p.AlertPubKey != nil {
		cp.AlertPubKey = make([]byte, len(p.AlertPubKey))
		copy(cp.AlertPubKey, p.AlertPubKey)
	}
	if p.DNSSeeds != nil {
		cp.DNSSeeds = make([]DNSSeed, len(p.DNSSeeds))
		copy(cp.DNSSeeds, p.DNSSeeds)
	}
	if p.Checkpoints != nil {
		cp.Checkpoints = make([]Checkpoint, len(p.Checkpoints))
		copy(cp.Checkpoints, p.Checkpoints)
	}
	if p.FixedSeeds != nil {
		cp.FixedSeeds = make([]FixedSeed, len(p.FixedSeeds))
		for i, s := range p.FixedSeeds {
			cp.FixedSeeds[i] = FixedSeed{
				IP:   append(net.IP(nil), s.IP...),
				Port: s.Port,
			}
		}
	}
	if p.GenesisBlock != nil {
		cp.GenesisBlock = copyBlock(p.GenesisBlock)
	}
	return &cp
}

// copyBlock deep copies a block.
func copyBlock(b *wire.MsgBlock) *wire.MsgBlock {
	block := wire.MsgBlock{
		Header:       b.Header,
		Transactions: make([]*wire.MsgTx, 0, len(b.Transactions)),
	}
	for _, tx := range b.Transactions {
		block.Transactions = append(block.Transactions, tx.Copy())
	}
	return &block
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it is predictable.
		panic(err)
	}
	return *hash
}

// newBigFromHex parses a hard-coded big-endian hex number, panicking on
// malformed input for the same reason as newHashFromStr.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(hexStr, "0x"), 16)
	if !ok {
		panic("invalid hex number in chain parameters: " + hexStr)
	}
	return n
}

// hexDecode decodes a hard-coded hex string and panics on malformed input.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
