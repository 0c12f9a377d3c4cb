package ethereum_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"

	"certichain/internal/ethereum"
	"certichain/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ChainClient", func() {
	var (
		client       *ethereum.ChainClient
		fakeClient   *fake.EthClient
		ctx          context.Context
		contractAddr string
		issuerKeyHex string
		testErr      error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		contractAddr = "0x1111111111111111111111111111111111111111"
		testErr = errors.New("test error")

		privateKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		issuerKeyHex = hex.EncodeToString(crypto.FromECDSA(privateKey))

		client, err = ethereum.NewChainClient(fakeClient, contractAddr, issuerKeyHex)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewChainClient", func() {
		When("the contract address is malformed", func() {
			It("should return invalid address error", func() {
				_, err := ethereum.NewChainClient(fakeClient, "not-an-address", issuerKeyHex)
				Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
			})
		})

		When("the issuer key is malformed", func() {
			It("should return error", func() {
				_, err := ethereum.NewChainClient(fakeClient, contractAddr, "zz")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("SubmitIssue", func() {
		var (
			recipient string
			txHash    string
			err       error
		)

		BeforeEach(func() {
			recipient = "0x2222222222222222222222222222222222222222"

			fakeClient.PendingNonceAtReturns(5, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
			fakeClient.EstimateGasReturns(120_000, nil)
			fakeClient.NetworkIDReturns(big.NewInt(11155111), nil)
			fakeClient.SendTransactionReturns(nil)
		})

		JustBeforeEach(func() {
			txHash, err = client.SubmitIssue(ctx, recipient, "Bachelor of Science", "ipfs://QmMeta")
		})

		When("the node accepts the transaction", func() {
			It("signs and sends a contract call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txHash).To(HavePrefix("0x"))

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, argTx := fakeClient.SendTransactionArgsForCall(0)
				Expect(argTx.To().Hex()).To(Equal(common.HexToAddress(contractAddr).Hex()))
				Expect(argTx.Nonce()).To(Equal(uint64(5)))
				Expect(argTx.Gas()).To(Equal(uint64(120_000)))
				Expect(argTx.Data()).NotTo(BeEmpty())
				Expect(argTx.Hash().Hex()).To(Equal(txHash))
			})
		})

		When("no issuer key is configured", func() {
			BeforeEach(func() {
				var newErr error
				client, newErr = ethereum.NewChainClient(fakeClient, contractAddr, "")
				Expect(newErr).NotTo(HaveOccurred())
			})

			It("should return no issuer key error", func() {
				Expect(err).To(MatchError(ethereum.ErrNoIssuerKey))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the recipient address is malformed", func() {
			BeforeEach(func() {
				recipient = "not-an-address"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
			})
		})

		When("gas estimation fails", func() {
			BeforeEach(func() {
				fakeClient.EstimateGasReturns(0, testErr)
			})

			It("should return error without sending", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("WaitMined", func() {
		var err error

		JustBeforeEach(func() {
			err = client.WaitMined(ctx, "0xab12")
		})

		When("the transaction is already mined", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
				}, nil)
			})

			It("should return without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(1))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusFailed,
				}, nil)
			})

			It("should return transaction reverted error", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			})
		})

		When("the receipt fetch fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, testErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})

		When("the context is cancelled while pending", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("TokenIDFromTransaction", func() {
		var (
			tokenID uint64
			err     error
		)

		JustBeforeEach(func() {
			tokenID, err = client.TokenIDFromTransaction(ctx, "0xab12")
		})

		When("the receipt carries the event", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
					Logs: []*types.Log{
						{
							Address: common.HexToAddress(contractAddr),
							Topics: []common.Hash{
								mustParseABI(issuedEventABI).Events["CertificateIssued"].ID,
								common.BigToHash(big.NewInt(42)),
							},
						},
					},
				}, nil)
			})

			It("should return the token id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tokenID).To(Equal(uint64(42)))
			})
		})

		When("the transaction is not mined yet", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("should return receipt not found error", func() {
				Expect(err).To(MatchError(ethereum.ErrReceiptNotFound))
			})
		})

		When("the receipt has no matching event", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
				}, nil)
			})

			It("should return event not found error", func() {
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
			})
		})
	})

	Describe("VerifyCertificate", func() {
		var (
			valid bool
			err   error
		)

		JustBeforeEach(func() {
			valid, err = client.VerifyCertificate(ctx, 42)
		})

		When("the contract reports the token valid", func() {
			BeforeEach(func() {
				word := make([]byte, 32)
				word[31] = 1
				fakeClient.CallContractReturns(word, nil)
			})

			It("should return true", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(valid).To(BeTrue())

				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
				_, argMsg, argBlock := fakeClient.CallContractArgsForCall(0)
				Expect(argMsg.To.Hex()).To(Equal(common.HexToAddress(contractAddr).Hex()))
				Expect(argMsg.Data).NotTo(BeEmpty())
				Expect(argBlock).To(BeNil())
			})
		})

		When("the contract reports the token invalid", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(make([]byte, 32), nil)
			})

			It("should return false", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(valid).To(BeFalse())
			})
		})

		When("the call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})
	})
})
