// Package deploy provides Challenge contract deployment routine.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the Challenge contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of the Challenge contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local account used for transaction signing (must be unlocked). The
	// account becomes the deployer, so the contract address is derived from it.
	LocalAccount *wallet.Account

	// Compiled executable and manifest of the Challenge contract.
	NEF      nef.File
	Manifest manifest.Manifest
}

// Deploy deploys the Challenge contract to the Neo network represented by
// given Prm.Blockchain and returns its address. If the contract is already
// on the chain, Deploy does nothing and returns the address right away, so
// it is safe to call repeatedly.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if prm.Logger == nil {
		return util.Uint160{}, errors.New("missing logger")
	}

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	onChainAddress := state.CreateContractHash(localActor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	stateOnChain, err := prm.Blockchain.GetContractStateByHash(onChainAddress)
	if err == nil && stateOnChain != nil {
		prm.Logger.Info("contract is already on the chain, skip deployment",
			zap.Stringer("address", onChainAddress))
		return onChainAddress, nil
	}

	prm.Logger.Info("deploying contract...", zap.Stringer("address", onChainAddress))

	txID, vub, err := management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction deploying the contract: %w", err)
	}

	prm.Logger.Info("transaction deploying the contract has been successfully sent, waiting for one to be accepted...",
		zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	res, err := localActor.Wait(txID, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for transaction deploying the contract to be accepted: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("transaction deploying the contract faulted: %s", res.FaultException)
	}

	prm.Logger.Info("contract has been successfully deployed", zap.Stringer("address", onChainAddress))

	return onChainAddress, nil
}
