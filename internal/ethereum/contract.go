package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ABI fragment of the deployed CertiChain contract. The event signature is
// fixed; changing it requires a contract redeploy and a decoder update.
const certiChainABI = `[
	{"type":"function","name":"issueCertificate","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"certificateType","type":"string"},{"name":"tokenURI","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"verifyCertificate","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"CertificateIssued","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"recipient","type":"address","indexed":true},{"name":"issuer","type":"address","indexed":true},{"name":"certificateType","type":"string","indexed":false},{"name":"tokenURI","type":"string","indexed":false},{"name":"issuedAt","type":"uint256","indexed":false}]}
]`

const defaultPollInterval = 2 * time.Second

type ChainClient struct {
	client       EthClient
	contract     common.Address
	contractABI  abi.ABI
	decoder      *EventDecoder
	issuerKey    *ecdsa.PrivateKey
	pollInterval time.Duration
}

// NewChainClient wraps an Ethereum node client with the CertiChain
// contract interface. issuerKeyHex may be empty: receipt reads and the
// validity check still work, SubmitIssue does not.
func NewChainClient(client EthClient, contractAddress string, issuerKeyHex string) (*ChainClient, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, contractAddress)
	}

	parsedABI, err := abi.JSON(strings.NewReader(certiChainABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	var issuerKey *ecdsa.PrivateKey
	if issuerKeyHex != "" {
		issuerKey, err = crypto.HexToECDSA(strings.TrimPrefix(issuerKeyHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse issuer private key: %w", err)
		}
	}

	contract := common.HexToAddress(contractAddress)
	return &ChainClient{
		client:       client,
		contract:     contract,
		contractABI:  parsedABI,
		decoder:      NewEventDecoder(contract, parsedABI),
		issuerKey:    issuerKey,
		pollInterval: defaultPollInterval,
	}, nil
}

// SubmitIssue signs and sends an issueCertificate transaction and returns
// its hash. Issuer authorization and the zero-address check live in the
// contract; only address format is validated here.
func (c *ChainClient) SubmitIssue(ctx context.Context, recipient string, certificateType string, tokenURI string) (string, error) {
	if c.issuerKey == nil {
		return "", ErrNoIssuerKey
	}
	if !common.IsHexAddress(recipient) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, recipient)
	}

	input, err := c.contractABI.Pack("issueCertificate", common.HexToAddress(recipient), certificateType, tokenURI)
	if err != nil {
		return "", fmt.Errorf("pack issueCertificate call: %w", err)
	}

	from := crypto.PubkeyToAddress(c.issuerKey.PublicKey)

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit, err := c.client.EstimateGas(ctx, geth.CallMsg{
		From: from,
		To:   &c.contract,
		Data: input,
	})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	chainID, err := c.client.NetworkID(ctx)
	if err != nil {
		return "", fmt.Errorf("network id: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.issuerKey)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	return signedTx.Hash().Hex(), nil
}

// WaitMined polls for the transaction receipt until the transaction is
// mined or ctx expires. A mined-but-reverted transaction is reported as
// ErrTransactionReverted so callers can tell it apart from RPC trouble.
func (c *ChainClient) WaitMined(ctx context.Context, txHash string) error {
	hash := common.HexToHash(txHash)

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return ErrTransactionReverted
			}
			return nil
		}
		if !errors.Is(err, geth.NotFound) {
			return fmt.Errorf("transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// TokenIDFromTransaction fetches the mined receipt once and decodes the
// CertificateIssued event out of its logs.
func (c *ChainClient) TokenIDFromTransaction(ctx context.Context, txHash string) (uint64, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return 0, fmt.Errorf("%w: %s", ErrReceiptNotFound, txHash)
		}
		return 0, fmt.Errorf("transaction receipt: %w", err)
	}

	tokenID, err := c.decoder.TokenID(receipt.Logs)
	if err != nil {
		return 0, err
	}
	return tokenID, nil
}

// VerifyCertificate reads the contract's own validity check for a token.
func (c *ChainClient) VerifyCertificate(ctx context.Context, tokenID uint64) (bool, error) {
	input, err := c.contractABI.Pack("verifyCertificate", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return false, fmt.Errorf("pack verifyCertificate call: %w", err)
	}

	output, err := c.client.CallContract(ctx, geth.CallMsg{
		To:   &c.contract,
		Data: input,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("call verifyCertificate: %w", err)
	}

	results, err := c.contractABI.Unpack("verifyCertificate", output)
	if err != nil {
		return false, fmt.Errorf("unpack verifyCertificate result: %w", err)
	}
	if len(results) != 1 {
		return false, fmt.Errorf("unexpected verifyCertificate result arity: %d", len(results))
	}

	valid, ok := results[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected verifyCertificate result type: %T", results[0])
	}
	return valid, nil
}
