package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zdziszkee/swift-registry/internal/models"
	repository "github.com/zdziszkee/swift-registry/internal/repositories"
	service "github.com/zdziszkee/swift-registry/internal/services"
	mocks "github.com/zdziszkee/swift-registry/tests/mocks"
)

func TestServices(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Services Suite")
}

var _ = Describe("SwiftService", func() {
	var (
		ctx       context.Context
		countries *mocks.MockCountryRepository
		banks     *mocks.MockBankRepository
		branches  *mocks.MockBranchRepository
		s         service.SwiftService
	)

	BeforeEach(func() {
		ctx = context.Background()
		countries = &mocks.MockCountryRepository{}
		banks = &mocks.MockBankRepository{}
		branches = &mocks.MockBranchRepository{}
		s = service.NewSwiftService(countries, banks, branches)
	})

	Describe("GetSwiftCodeDetails", func() {
		Context("when called with a code shorter than 8 characters", func() {
			It("should return an invalid input error", func() {
				_, err := s.GetSwiftCodeDetails(ctx, "ABC123")
				Expect(err).To(MatchError(service.ErrInvalidInput))
			})
		})

		Context("when called with a headquarters code", func() {
			BeforeEach(func() {
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return &models.Bank{SwiftCode: "ABCDUS33XXX", BankName: "Test Bank", Address: "123 Main St", CountryISOCode: "US"}, nil
				}
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
			})

			It("should return details with an empty branch list when no branches exist", func() {
				branches.FindByHeadquartersFunc = func(ctx context.Context, hqCode string) ([]models.Branch, error) {
					return nil, nil
				}

				got, err := s.GetSwiftCodeDetails(ctx, "ABCDUS33XXX")
				Expect(err).NotTo(HaveOccurred())
				Expect(got.IsHeadquarter).To(BeTrue())
				Expect(got.CountryName).To(Equal("UNITED STATES"))
				Expect(got.Branches).NotTo(BeNil())
				Expect(got.Branches).To(BeEmpty())
			})

			It("should embed branch summaries without their country name", func() {
				branches.FindByHeadquartersFunc = func(ctx context.Context, hqCode string) ([]models.Branch, error) {
					Expect(hqCode).To(Equal("ABCDUS33XXX"))
					return []models.Branch{
						{SwiftCode: "ABCDUS33001", BankName: "Branch One", CountryISOCode: "US", HeadquartersCode: "ABCDUS33XXX"},
					}, nil
				}

				got, err := s.GetSwiftCodeDetails(ctx, "abcdus33xxx")
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Branches).To(HaveLen(1))
				Expect(got.Branches[0].SwiftCode).To(Equal("ABCDUS33001"))
				Expect(got.Branches[0].IsHeadquarter).To(BeFalse())
			})

			It("should return not found when the bank is absent", func() {
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return nil, repository.ErrNotFound
				}

				_, err := s.GetSwiftCodeDetails(ctx, "ABCDUS33XXX")
				Expect(err).To(MatchError(service.ErrNotFound))
			})
		})

		Context("when called with a branch code", func() {
			It("should return branch details without a branch list", func() {
				branches.FindFunc = func(ctx context.Context, code string) (*models.Branch, error) {
					return &models.Branch{SwiftCode: "ABCDUS33001", BankName: "Branch One", CountryISOCode: "US", HeadquartersCode: "ABCDUS33XXX"}, nil
				}
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}

				got, err := s.GetSwiftCodeDetails(ctx, "ABCDUS33001")
				Expect(err).NotTo(HaveOccurred())
				Expect(got.IsHeadquarter).To(BeFalse())
				Expect(got.CountryName).To(Equal("UNITED STATES"))
				Expect(got.Branches).To(BeNil())
			})

			It("should return not found when the branch is absent", func() {
				branches.FindFunc = func(ctx context.Context, code string) (*models.Branch, error) {
					return nil, repository.ErrNotFound
				}

				_, err := s.GetSwiftCodeDetails(ctx, "ABCDUS33001")
				Expect(err).To(MatchError(service.ErrNotFound))
			})
		})

		Context("when the repository fails", func() {
			It("should propagate the error", func() {
				expectedError := errors.New("db error")
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return nil, expectedError
				}

				_, err := s.GetSwiftCodeDetails(ctx, "ABCDUS33XXX")
				Expect(err).To(MatchError(expectedError))
			})
		})
	})

	Describe("GetSwiftCodesByCountry", func() {
		Context("when called with an invalid country code", func() {
			It("should return an invalid input error", func() {
				_, err := s.GetSwiftCodesByCountry(ctx, "USA")
				Expect(err).To(MatchError(service.ErrInvalidInput))

				_, err = s.GetSwiftCodesByCountry(ctx, "")
				Expect(err).To(MatchError(service.ErrInvalidInput))
			})
		})

		Context("when the country is unknown", func() {
			It("should return not found", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return nil, repository.ErrNotFound
				}

				_, err := s.GetSwiftCodesByCountry(ctx, "XX")
				Expect(err).To(MatchError(service.ErrNotFound))
			})
		})

		Context("when the country has banks and branches", func() {
			It("should list banks before branches with the right flags", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					Expect(iso2).To(Equal("US"))
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.FindByCountryFunc = func(ctx context.Context, iso2 string) ([]models.Bank, error) {
					return []models.Bank{{SwiftCode: "TESTUS33XXX", BankName: "Test Bank", CountryISOCode: "US"}}, nil
				}
				branches.FindByCountryFunc = func(ctx context.Context, iso2 string) ([]models.Branch, error) {
					return []models.Branch{{SwiftCode: "TESTUS33001", BankName: "Test Branch", CountryISOCode: "US", HeadquartersCode: "TESTUS33XXX"}}, nil
				}

				got, err := s.GetSwiftCodesByCountry(ctx, "us")
				Expect(err).NotTo(HaveOccurred())
				Expect(got.CountryISO2).To(Equal("US"))
				Expect(got.CountryName).To(Equal("UNITED STATES"))
				Expect(got.SwiftCodes).To(HaveLen(2))
				Expect(got.SwiftCodes[0].SwiftCode).To(Equal("TESTUS33XXX"))
				Expect(got.SwiftCodes[0].IsHeadquarter).To(BeTrue())
				Expect(got.SwiftCodes[1].SwiftCode).To(Equal("TESTUS33001"))
				Expect(got.SwiftCodes[1].IsHeadquarter).To(BeFalse())
			})
		})
	})

	Describe("CreateSwiftCode", func() {
		Context("when the request is malformed", func() {
			It("should reject a nil request", func() {
				Expect(s.CreateSwiftCode(ctx, nil)).To(MatchError(service.ErrInvalidInput))
			})

			It("should reject missing required fields", func() {
				Expect(s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ABCDUS33XXX", CountryISO2: "US", CountryName: "UNITED STATES",
				})).To(MatchError(service.ErrInvalidInput))
			})

			It("should reject a code with a bad length", func() {
				Expect(s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ABC", BankName: "Test Bank", CountryISO2: "US", CountryName: "UNITED STATES",
				})).To(MatchError(service.ErrInvalidInput))

				Expect(s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ABCDUS33XXX1", BankName: "Test Bank", CountryISO2: "US", CountryName: "UNITED STATES",
				})).To(MatchError(service.ErrInvalidInput))
			})

			It("should reject a country code that is not 2 characters", func() {
				Expect(s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ABCDUS33XXX", BankName: "Test Bank", CountryISO2: "USA", CountryName: "UNITED STATES",
				})).To(MatchError(service.ErrInvalidInput))
			})
		})

		Context("when adding a headquarters", func() {
			It("should create the missing country upper-cased and save the bank", func() {
				var savedCountry *models.Country
				var savedBank *models.Bank
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return nil, repository.ErrNotFound
				}
				countries.SaveFunc = func(ctx context.Context, country *models.Country) error {
					savedCountry = country
					return nil
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					savedBank = bank
					return nil
				}

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode:   "TESTUS33XXX",
					BankName:    "Test Bank",
					CountryISO2: "us",
					CountryName: "united states",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(savedCountry.ISO2).To(Equal("US"))
				Expect(savedCountry.Name).To(Equal("UNITED STATES"))
				Expect(savedBank.SwiftCode).To(Equal("TESTUS33XXX"))
				Expect(savedBank.CountryISOCode).To(Equal("US"))
			})

			It("should not create a country that already exists", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error { return nil }

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "TESTUS33XXX", BankName: "Test Bank", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should classify by code shape even when the flag says branch", func() {
				savedBanks := 0
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					savedBanks++
					return nil
				}

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "TESTUS33XXX", BankName: "Test Bank", CountryISO2: "US", CountryName: "UNITED STATES",
					IsHeadquarter: false,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(savedBanks).To(Equal(1))
			})

			It("should surface a duplicate as already exists", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					return repository.ErrDuplicate
				}

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "TESTUS33XXX", BankName: "Test Bank", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).To(MatchError(service.ErrAlreadyExists))
			})
		})

		Context("when adding a branch under an existing headquarters", func() {
			It("should save the branch without creating a new bank", func() {
				var savedBranch *models.Branch
				bankSaves := 0
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					Expect(code).To(Equal("TESTUS33XXX"))
					return &models.Bank{SwiftCode: "TESTUS33XXX", BankName: "Test Bank", CountryISOCode: "US"}, nil
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					bankSaves++
					return nil
				}
				branches.SaveFunc = func(ctx context.Context, branch *models.Branch) error {
					savedBranch = branch
					return nil
				}

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "TESTUS33001", BankName: "Test Branch", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(bankSaves).To(Equal(0))
				Expect(savedBranch.SwiftCode).To(Equal("TESTUS33001"))
				Expect(savedBranch.HeadquartersCode).To(Equal("TESTUS33XXX"))
			})
		})

		Context("when adding a branch whose headquarters is unknown", func() {
			It("should auto-create a headquarters stub from the request", func() {
				var stub *models.Bank
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return nil, repository.ErrNotFound
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					stub = bank
					return nil
				}
				branches.SaveFunc = func(ctx context.Context, branch *models.Branch) error { return nil }

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ORPHUS33001", BankName: "Orphan Branch", Address: "9 Side St", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(stub).NotTo(BeNil())
				Expect(stub.SwiftCode).To(Equal("ORPHUS33XXX"))
				Expect(stub.BankName).To(Equal("Orphan Branch"))
				Expect(stub.Address).To(Equal("9 Side St"))
			})

			It("should tolerate a concurrent duplicate on the stub", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return nil, repository.ErrNotFound
				}
				banks.SaveFunc = func(ctx context.Context, bank *models.Bank) error {
					return repository.ErrDuplicate
				}
				branches.SaveFunc = func(ctx context.Context, branch *models.Branch) error { return nil }

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "ORPHUS33001", BankName: "Orphan Branch", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should surface a duplicate branch as already exists", func() {
				countries.FindFunc = func(ctx context.Context, iso2 string) (*models.Country, error) {
					return &models.Country{ISO2: "US", Name: "UNITED STATES"}, nil
				}
				banks.FindFunc = func(ctx context.Context, code string) (*models.Bank, error) {
					return &models.Bank{SwiftCode: code}, nil
				}
				branches.SaveFunc = func(ctx context.Context, branch *models.Branch) error {
					return repository.ErrDuplicate
				}

				err := s.CreateSwiftCode(ctx, &service.CreateSwiftCodeRequest{
					SwiftCode: "TESTUS33001", BankName: "Test Branch", CountryISO2: "US", CountryName: "UNITED STATES",
				})
				Expect(err).To(MatchError(service.ErrAlreadyExists))
			})
		})
	})

	Describe("DeleteSwiftCode", func() {
		Context("when called with a code shorter than 8 characters", func() {
			It("should return an invalid input error", func() {
				Expect(s.DeleteSwiftCode(ctx, "ABC")).To(MatchError(service.ErrInvalidInput))
			})
		})

		Context("when deleting a headquarters", func() {
			It("should cascade branch deletion before deleting the bank", func() {
				var order []string
				branches.DeleteByHeadquartersFunc = func(ctx context.Context, hqCode string) error {
					order = append(order, "branches:"+hqCode)
					return nil
				}
				banks.DeleteFunc = func(ctx context.Context, code string) error {
					order = append(order, "bank:"+code)
					return nil
				}

				Expect(s.DeleteSwiftCode(ctx, "abcdus33xxx")).To(Succeed())
				Expect(order).To(Equal([]string{"branches:ABCDUS33XXX", "bank:ABCDUS33XXX"}))
			})

			It("should report not found when the bank was absent even after cascading", func() {
				cascaded := false
				branches.DeleteByHeadquartersFunc = func(ctx context.Context, hqCode string) error {
					cascaded = true
					return nil
				}
				banks.DeleteFunc = func(ctx context.Context, code string) error {
					return repository.ErrNotFound
				}

				err := s.DeleteSwiftCode(ctx, "ABCDUS33XXX")
				Expect(err).To(MatchError(service.ErrNotFound))
				Expect(cascaded).To(BeTrue())
			})
		})

		Context("when deleting a branch", func() {
			It("should delete it directly", func() {
				deleted := ""
				branches.DeleteFunc = func(ctx context.Context, code string) error {
					deleted = code
					return nil
				}

				Expect(s.DeleteSwiftCode(ctx, "abcdus33001")).To(Succeed())
				Expect(deleted).To(Equal("ABCDUS33001"))
			})

			It("should return not found for a missing branch", func() {
				branches.DeleteFunc = func(ctx context.Context, code string) error {
					return repository.ErrNotFound
				}

				Expect(s.DeleteSwiftCode(ctx, "ABCDUS33001")).To(MatchError(service.ErrNotFound))
			})
		})
	})
})
