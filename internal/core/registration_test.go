package core_test

import (
	"context"
	"errors"

	"certichain/internal/core"
	"certichain/internal/core/fake"
	"certichain/internal/repository"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Registration", func() {
	var (
		fakeRepo     *fake.Repository
		fakeChain    *fake.ChainService
		fakeContent  *fake.ContentStore
		fakeNotifier *fake.Notifier
		fakeJWT      *fake.TokenIssuer
		ctx          context.Context

		certichain *core.CertiChain

		genToken *jwt.Token
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeChain = new(fake.ChainService)
		fakeContent = new(fake.ContentStore)
		fakeNotifier = new(fake.Notifier)
		fakeJWT = new(fake.TokenIssuer)
		ctx = context.Background()

		certichain = core.NewCertiChain(
			zap.NewNop().Sugar(),
			fakeRepo,
			fakeChain,
			fakeContent,
			fakeNotifier,
			fakeJWT,
			"sepolia")

		genToken = jwt.New(jwt.SigningMethodHS512)
		fakeJWT.GenerateReturns(genToken)
		fakeJWT.SignReturns("signed.token", nil)

		fakeErr = errors.New("fake error")
	})

	Describe("RegisterInstitution", func() {
		var (
			msg    core.RegisterInstitutionMessage
			record core.UserRecord
			token  string
			err    error
		)

		BeforeEach(func() {
			msg = core.RegisterInstitutionMessage{
				Email:           "registrar@university.edu",
				InstitutionName: "Test University",
				InstitutionType: "University",
				WalletAddress:   "0x1111111111111111111111111111111111111111",
			}

			fakeRepo.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			record, token, err = certichain.RegisterInstitution(ctx, msg)
		})

		When("wallet and email are free", func() {
			It("creates the user and institution atomically", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(record.Role).To(Equal(core.RoleInstitution))
				Expect(record.Institution).NotTo(BeNil())
				Expect(record.Institution.InstitutionName).To(Equal(msg.InstitutionName))
				Expect(record.Institution.IsVerified).To(BeFalse())

				Expect(fakeRepo.CreateInstitutionUserCallCount()).To(Equal(1))
				_, argUser, argInstitution := fakeRepo.CreateInstitutionUserArgsForCall(0)
				Expect(argUser.Role).To(Equal(repository.RoleInstitution))
				Expect(argUser.WalletAddress).To(Equal(msg.WalletAddress))
				Expect(argInstitution.UserID).To(Equal(argUser.ID))
				Expect(argInstitution.WalletAddress).To(Equal(msg.WalletAddress))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				tokenInfo := fakeJWT.GenerateArgsForCall(0)
				Expect(tokenInfo.Email).To(Equal(msg.Email))
				Expect(tokenInfo.Wallet).To(Equal(msg.WalletAddress))
				Expect(tokenInfo.Role).To(Equal("INSTITUTION"))
				Expect(tokenInfo.Subject).NotTo(BeEmpty())
			})
		})

		When("wallet is already an institution", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					WalletAddress: msg.WalletAddress,
					Role:          repository.RoleInstitution,
				}, nil)
			})

			It("should return institution registered error", func() {
				Expect(err).To(MatchError(core.ErrInstitutionRegistered))
				Expect(fakeRepo.CreateInstitutionUserCallCount()).To(Equal(0))
			})
		})

		When("wallet is already a recipient", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					WalletAddress: msg.WalletAddress,
					Role:          repository.RoleRecipient,
				}, nil)
			})

			It("should return wallet is recipient error", func() {
				Expect(err).To(MatchError(core.ErrWalletIsRecipient))
				Expect(fakeRepo.CreateInstitutionUserCallCount()).To(Equal(0))
			})
		})

		When("email is taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{Email: msg.Email}, nil)
			})

			It("should return email registered error", func() {
				Expect(err).To(MatchError(core.ErrEmailRegistered))
				Expect(fakeRepo.CreateInstitutionUserCallCount()).To(Equal(0))
			})
		})

		When("a concurrent registration wins the race", func() {
			BeforeEach(func() {
				fakeRepo.CreateInstitutionUserReturns(repository.ErrDuplicateRecord)
			})

			It("should surface the constraint as already registered", func() {
				Expect(err).To(MatchError(core.ErrAlreadyRegistered))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RegisterRecipient", func() {
		var (
			msg    core.RegisterRecipientMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.RegisterRecipientMessage{
				Email:         "student@example.com",
				Name:          "Test Student",
				WalletAddress: "0x2222222222222222222222222222222222222222",
			}

			fakeRepo.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			record, _, err = certichain.RegisterRecipient(ctx, msg)
		})

		When("wallet and email are free", func() {
			It("creates a recipient user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Role).To(Equal(core.RoleRecipient))
				Expect(record.Institution).To(BeNil())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Role).To(Equal(repository.RoleRecipient))
				Expect(argUser.WalletAddress).To(Equal(msg.WalletAddress))
			})
		})

		When("wallet is already a recipient", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					Role: repository.RoleRecipient,
				}, nil)
			})

			It("should return recipient registered error", func() {
				Expect(err).To(MatchError(core.ErrRecipientRegistered))
			})
		})

		When("wallet is already an institution", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					Role: repository.RoleInstitution,
				}, nil)
			})

			It("should return wallet is institution error", func() {
				Expect(err).To(MatchError(core.ErrWalletIsInstitution))
			})
		})
	})

	Describe("Web3Auth", func() {
		var (
			msg    core.Web3AuthMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.Web3AuthMessage{
				Email:         "student@example.com",
				WalletAddress: "0x3333333333333333333333333333333333333333",
			}
		})

		JustBeforeEach(func() {
			record, _, err = certichain.Web3Auth(ctx, msg)
		})

		When("user already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:            "user-1",
					Email:         msg.Email,
					WalletAddress: "0x9999999999999999999999999999999999999999",
					Role:          repository.RoleInstitution,
				}, nil)
				fakeRepo.UpdateUserWalletReturns(nil)
			})

			It("updates only the wallet and keeps the role", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.WalletAddress).To(Equal(msg.WalletAddress))
				Expect(record.Role).To(Equal(core.RoleInstitution))

				Expect(fakeRepo.UpdateUserWalletCallCount()).To(Equal(1))
				_, argEmail, argWallet := fakeRepo.UpdateUserWalletArgsForCall(0)
				Expect(argEmail).To(Equal(msg.Email))
				Expect(argWallet).To(Equal(msg.WalletAddress))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("creates a recipient user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Role).To(Equal(core.RoleRecipient))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Role).To(Equal(repository.RoleRecipient))
				Expect(argUser.Email).To(Equal(msg.Email))
			})
		})

		When("the wallet is bound to another user", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:    "user-1",
					Email: msg.Email,
				}, nil)
				fakeRepo.UpdateUserWalletReturns(repository.ErrDuplicateRecord)
			})

			It("should return already registered error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyRegistered))
			})
		})

		When("lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UserByWallet", func() {
		var (
			wallet string
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			wallet = "0x4444444444444444444444444444444444444444"
		})

		JustBeforeEach(func() {
			record, err = certichain.UserByWallet(ctx, wallet)
		})

		When("user exists with institution profile", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{
					ID:            "user-1",
					WalletAddress: wallet,
					Role:          repository.RoleInstitution,
					Institution: &repository.Institution{
						ID:              "inst-1",
						InstitutionName: "Test University",
					},
				}, nil)
			})

			It("should return the user with institution data", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("user-1"))
				Expect(record.Institution).NotTo(BeNil())
				Expect(record.Institution.InstitutionName).To(Equal("Test University"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})
})
