package jwt_test

import (
	"certichain/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		info    jwt.TokenInfo
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		info = jwt.TokenInfo{
			Email:      "registrar@university.edu",
			Wallet:     "0x1111111111111111111111111111111111111111",
			Role:       "INSTITUTION",
			Subject:    "user-1",
			Expiration: 24,
		}
	})

	When("a signed token is validated", func() {
		It("should return the original claims", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["email"]).To(Equal("registrar@university.edu"))
			Expect(claims["wallet"]).To(Equal("0x1111111111111111111111111111111111111111"))
			Expect(claims["role"]).To(Equal("INSTITUTION"))
		})
	})

	When("the token is signed with a different secret", func() {
		It("should return ErrTokenNotValid", func() {
			other := jwt.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the token has expired", func() {
		It("should reject it", func() {
			info.Expiration = -2
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("should return ErrTokenNotValid", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})
})
