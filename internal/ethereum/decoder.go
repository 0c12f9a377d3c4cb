package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const issuedEventName = "CertificateIssued"

// EventDecoder recovers the chain-assigned token id from a mined
// receipt's logs. The token id is never returned by the submission call,
// so this decode is the only way to learn it.
type EventDecoder struct {
	contract common.Address
	event    abi.Event
}

func NewEventDecoder(contract common.Address, contractABI abi.ABI) *EventDecoder {
	return &EventDecoder{
		contract: contract,
		event:    contractABI.Events[issuedEventName],
	}
}

// TokenID walks the logs, skipping anything that is not a
// CertificateIssued event from the known contract. No matching log in
// the whole receipt is a hard ErrEventNotFound.
func (d *EventDecoder) TokenID(logs []*types.Log) (uint64, error) {
	for _, entry := range logs {
		if tokenID, ok := d.tryDecode(entry); ok {
			return tokenID, nil
		}
	}
	return 0, ErrEventNotFound
}

// tryDecode reports false for any log that does not match instead of
// erroring, so callers can treat the receipt as a filterable sequence.
func (d *EventDecoder) tryDecode(entry *types.Log) (uint64, bool) {
	if entry == nil || entry.Address != d.contract {
		return 0, false
	}
	// topic 0 is the event signature, topic 1 the indexed tokenId
	if len(entry.Topics) < 2 || entry.Topics[0] != d.event.ID {
		return 0, false
	}
	return new(big.Int).SetBytes(entry.Topics[1].Bytes()).Uint64(), true
}
