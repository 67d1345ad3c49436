// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// mainNetVariant returns the literal values of the main Keymaker network.
func mainNetVariant() *variant {
	// mainPowLimit is the highest proof of work value a Keymaker block can
	// have for the main network.  It is the value 2^240 - 1.
	mainPowLimit := newBigFromHex("0000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &variant{
		genesis: GenesisSeed{
			Timestamp: time.Unix(1667184351, 0), // Mon, 31 Oct 2022 02:45:51 UTC
			Nonce:     500002008,
			Bits:      0x1f00ffff,
			Version:   1,
			Reward:    0,
		},
		genesisHash:       newHashFromStr("0a003e4519bf91f168721877a8228c9ccd6fcbb2da5ee3303217004b1fd37366"),
		genesisMerkleRoot: newHashFromStr("bd9c21b34310fa6c71b037703b141627ac658badebbb78b53f85033298d11580"),

		params: Params{
			Net:  MainNet,
			Name: "mainnet",
			Consensus: ConsensusParams{
				PowLimit:              mainPowLimit,
				TargetTimespan:        time.Hour * 48, // 48 hours between retargets
				StakeTargetSpacing:    time.Minute,    // 60 seconds
				PowTargetSpacing:      time.Minute,    // StakeTargetSpacing
				TargetSpacingWorkMax:  time.Minute,    // 1 * StakeTargetSpacing
				StakeMinConfirmations: 30,
				CoinbaseMaturity:      40,
				DGWPastBlocks:         30,
				BIP0016Height:         0, // Always active
				BIP0034Height:         0, // Always active
				StartMiningTime:       time.Unix(1667184351, 0),

				PowAllowMinDifficultyBlocks: false,
				PowNoRetargeting:            false,

				// Not enforced on mainnet yet.
				MinimumChainWork: new(big.Int),

				DefaultAssumeValid: newHashFromStr("0a003e4519bf91f168721877a8228c9ccd6fcbb2da5ee3303217004b1fd37366"),
			},

			NetMagic:    0x59a28c31, // 31 8c a2 59 on the wire
			DefaultPort: "12421",
			AlertPubKey: hexDecode("0487bc90524104c5ee1fe66cd28e9931f09dbf267d61be791" +
				"8221c8b5fe02c6b640a63ead9c5fe139affcb0f5d5592e97c137b9a5793809db5e0" +
				"46d526f96bd38d"),
			DNSSeeds: []DNSSeed{
				{"seeder.keymaker.cc", false},
			},
			FixedSeeds: []FixedSeed{},

			AddressPrefixes: AddressPrefixes{
				PubKeyHashAddrID: 46, // starts with K
				ScriptHashAddrID: 73, // starts with W
				PrivateKeyID:     63, // starts with 3 (uncompressed) or A (compressed)

				// BIP32 hierarchical deterministic extended key magics
				HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
				HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
			},
			Bech32HRP: "key",

			// Height 0 is filled in once the genesis block is verified.
			Checkpoints: []Checkpoint{},

			// Data from rpc: getchaintxstats 0
			ChainTxData: ChainTxData{
				Time:    time.Unix(1667184351, 0),
				TxCount: 0,
				TxRate:  0,
			},

			MiningRequiresPeers:      true,
			DefaultConsistencyChecks: false,
			RequireStandard:          true,
			MineBlocksOnDemand:       false,
		},
	}
}
