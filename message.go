// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package signercore

import (
	"github.com/oasisprotocol/ledger-signer-core/internal/method"
	"github.com/oasisprotocol/ledger-signer-core/internal/txmodel"
)

// Method identifies the staking or registry operation a transaction body
// belongs to. It is a type alias over internal/method so every package in
// this module (ctxstore, decoder, render) can share one definition without
// importing the root package and creating a cycle.
type Method = method.Method

const (
	MethodUnknown                        = method.Unknown
	MethodStakingTransfer                = method.StakingTransfer
	MethodStakingBurn                    = method.StakingBurn
	MethodStakingAddEscrow               = method.StakingAddEscrow
	MethodStakingReclaimEscrow           = method.StakingReclaimEscrow
	MethodStakingAmendCommissionSchedule = method.StakingAmendCommissionSchedule
	MethodRegistryDeregisterEntity       = method.RegistryDeregisterEntity
	MethodRegistryUnfreezeNode           = method.RegistryUnfreezeNode
)

// MethodFromWireName maps a decoded "method" text string to a Method,
// returning MethodUnknown for anything unrecognized.
func MethodFromWireName(name string) Method {
	return method.FromWireName(name)
}

// The data model below is a plain alias over internal/txmodel: decoder
// and render both need these shapes, and the root package needs to
// call decoder.Decode and render.NumItems/GetItem. Defining the types here
// directly would force decoder/render to import signercore, which in turn
// imports decoder/render to implement Session — a cycle. internal/txmodel
// breaks that cycle; this file just re-exports it under the names callers
// of this module already expect.
type (
	PublicKey                   = txmodel.PublicKey
	Quantity                    = txmodel.Quantity
	EpochTime                   = txmodel.EpochTime
	Fee                         = txmodel.Fee
	TransferBody                = txmodel.TransferBody
	BurnBody                    = txmodel.BurnBody
	AddEscrowBody               = txmodel.AddEscrowBody
	ReclaimEscrowBody           = txmodel.ReclaimEscrowBody
	AmendCommissionScheduleBody = txmodel.AmendCommissionScheduleBody
	UnfreezeNodeBody            = txmodel.UnfreezeNodeBody
	CommissionRateStep          = txmodel.CommissionRateStep
	CommissionRateBoundStep     = txmodel.CommissionRateBoundStep
	Tx                          = txmodel.Tx
	Entity                      = txmodel.Entity
	ParsedMessage               = txmodel.ParsedMessage
)
