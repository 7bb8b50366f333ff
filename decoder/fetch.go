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

package decoder

import (
	"github.com/oasisprotocol/ledger-signer-core/cborio"
	"github.com/oasisprotocol/ledger-signer-core/internal/txmodel"
)

// FetchRateAt re-parses msg.Input from scratch to extract the i-th element
// of body.amendment.rates into msg.ScratchRate. It never grows a slice —
// each call touches exactly one element.
func FetchRateAt(msg *txmodel.ParsedMessage, i int) error {
	ratesContents, _, err := enterAmendmentArray(msg.Input, "rates")
	if err != nil {
		return err
	}
	if err := advanceN(ratesContents, i); err != nil {
		return err
	}
	return readRateStep(ratesContents, &msg.ScratchRate)
}

// FetchBoundAt is FetchRateAt's analogue for body.amendment.bounds.
func FetchBoundAt(msg *txmodel.ParsedMessage, i int) error {
	boundsContents, _, err := enterAmendmentArray(msg.Input, "bounds")
	if err != nil {
		return err
	}
	if err := advanceN(boundsContents, i); err != nil {
		return err
	}
	return readBoundStep(boundsContents, &msg.ScratchBound)
}

// FetchNodeAt re-parses msg.Input to extract the i-th entry of the
// top-level "nodes" array into msg.ScratchNode.
func FetchNodeAt(msg *txmodel.ParsedMessage, i int) error {
	root := cborio.NewCursor(msg.Input)
	contents, _, err := root.EnterMapLen()
	if err != nil {
		return translateCursorErr(err)
	}

	if err := requireKey(contents, "id"); err != nil {
		return err
	}
	if err := contents.Advance(); err != nil { // skip the id value
		return translateCursorErr(err)
	}

	if err := requireKey(contents, "nodes"); err != nil {
		return err
	}
	nodesContents, _, err := contents.EnterArray()
	if err != nil {
		return translateCursorErr(err)
	}
	if err := advanceN(nodesContents, i); err != nil {
		return err
	}
	return cborio.ReadPublicKey(nodesContents, msg.ScratchNode[:])
}

// enterAmendmentArray walks input -> (fee?) -> body -> amendment -> key,
// returning a cursor positioned at the named array's first element. In
// canonical key order "rates" precedes "bounds", so a "bounds" lookup skips
// the "rates" entry first.
func enterAmendmentArray(input []byte, key string) (*cborio.Cursor, int, error) {
	root := cborio.NewCursor(input)
	contents, _, err := root.EnterMapLen()
	if err != nil {
		return nil, 0, translateCursorErr(err)
	}

	if ok, err := cborio.MatchTextKey(contents, "fee"); err != nil {
		return nil, 0, translateCursorErr(err)
	} else if ok {
		if err := contents.Advance(); err != nil { // "fee" key
			return nil, 0, translateCursorErr(err)
		}
		if err := contents.Advance(); err != nil { // fee value
			return nil, 0, translateCursorErr(err)
		}
	}

	if err := requireKey(contents, "body"); err != nil {
		return nil, 0, err
	}
	bodyContents, err := contents.EnterMap(1)
	if err != nil {
		return nil, 0, translateCursorErr(err)
	}

	if err := requireKey(bodyContents, "amendment"); err != nil {
		return nil, 0, err
	}
	amendmentContents, err := bodyContents.EnterMap(2)
	if err != nil {
		return nil, 0, translateCursorErr(err)
	}

	if key == "bounds" {
		if err := requireKey(amendmentContents, "rates"); err != nil {
			return nil, 0, err
		}
		if err := amendmentContents.Advance(); err != nil { // rates value
			return nil, 0, translateCursorErr(err)
		}
	}
	if err := requireKey(amendmentContents, key); err != nil {
		return nil, 0, err
	}
	arrLen, err := amendmentContents.ArrayLen()
	if err != nil {
		return nil, 0, translateCursorErr(err)
	}
	arrContents, _, err := amendmentContents.EnterArray()
	if err != nil {
		return nil, 0, translateCursorErr(err)
	}
	return arrContents, arrLen, nil
}

func advanceN(c *cborio.Cursor, n int) error {
	for i := 0; i < n; i++ {
		if err := c.Advance(); err != nil {
			return translateCursorErr(err)
		}
	}
	return nil
}

func readRateStep(c *cborio.Cursor, out *txmodel.CommissionRateStep) error {
	inner, err := c.EnterMap(2)
	if err != nil {
		return translateCursorErr(err)
	}
	if err := requireKey(inner, "rate"); err != nil {
		return err
	}
	if err := readQuantity(inner, &out.Rate); err != nil {
		return err
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}
	if err := requireKey(inner, "start"); err != nil {
		return err
	}
	start, err := cborio.ReadUint64(inner)
	if err != nil {
		return translateCursorErr(err)
	}
	out.Start = start
	return nil
}

func readBoundStep(c *cborio.Cursor, out *txmodel.CommissionRateBoundStep) error {
	inner, err := c.EnterMap(3)
	if err != nil {
		return translateCursorErr(err)
	}
	if err := requireKey(inner, "start"); err != nil {
		return err
	}
	start, err := cborio.ReadUint64(inner)
	if err != nil {
		return translateCursorErr(err)
	}
	out.Start = start
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}
	if err := requireKey(inner, "rate_max"); err != nil {
		return err
	}
	if err := readQuantity(inner, &out.RateMax); err != nil {
		return err
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}
	if err := requireKey(inner, "rate_min"); err != nil {
		return err
	}
	return readQuantity(inner, &out.RateMin)
}
