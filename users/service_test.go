package users_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/test"
	"github.com/plemya-health/healthfeed/users"
	"go.uber.org/zap"
)

type repositoryFake struct {
	profiles  map[string]*users.Profile
	getCalls  int
	updateErr error
}

func (f *repositoryFake) Get(_ context.Context, userId string) (*users.Profile, error) {
	f.getCalls++
	profile, ok := f.profiles[userId]
	if !ok {
		return nil, users.ErrNotFound
	}
	return profile, nil
}

func (f *repositoryFake) UpdateEmergencyInfo(_ context.Context, userId string, info users.EmergencyInfo) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	profile, ok := f.profiles[userId]
	if !ok {
		profile = &users.Profile{UserId: &userId}
		f.profiles[userId] = profile
	}
	profile.EmergencyInfo = &info
	return nil
}

var _ = Describe("Users service", func() {
	var userId string
	var repo *repositoryFake
	var service users.Service

	BeforeEach(func() {
		userId = test.Faker.UUID().V4()
		repo = &repositoryFake{profiles: map[string]*users.Profile{}}

		var err error
		service, err = users.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("GetProfile", func() {
		It("serves repeated reads from the cache", func() {
			repo.profiles[userId] = &users.Profile{
				UserId:   &userId,
				FullName: pointer.FromAny(test.Faker.Person().Name()),
			}

			first, err := service.GetProfile(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			second, err := service.GetProfile(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())

			Expect(second.FullName).To(Equal(first.FullName))
			Expect(repo.getCalls).To(Equal(1))
		})

		It("hands out copies so callers cannot poison the cache", func() {
			repo.profiles[userId] = &users.Profile{
				UserId:   &userId,
				FullName: pointer.FromAny("Anna K."),
			}

			first, err := service.GetProfile(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			*first.FullName = "mutated"

			second, err := service.GetProfile(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(second.FullName).To(Equal(pointer.FromAny("Anna K.")))
		})

		It("returns not found for unknown users", func() {
			_, err := service.GetProfile(context.Background(), userId)
			Expect(err).To(MatchError(users.ErrNotFound))
		})
	})

	Describe("SaveEmergencyInfo", func() {
		It("stamps the update time", func() {
			saved, err := service.SaveEmergencyInfo(context.Background(), userId, users.EmergencyInfo{
				BloodType: pointer.FromAny("O+"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(saved.UpdatedAt).ToNot(BeNil())
		})

		It("assigns ids to new emergency contacts and keeps existing ones", func() {
			existingId := "contact-1"
			saved, err := service.SaveEmergencyInfo(context.Background(), userId, users.EmergencyInfo{
				EmergencyContacts: []users.EmergencyContact{
					{Id: &existingId, Name: "Ivan", Phone: "+7 900 000-00-01"},
					{Name: "Maria", Phone: "+7 900 000-00-02"},
				},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(saved.EmergencyContacts).To(HaveLen(2))
			Expect(saved.EmergencyContacts[0].Id).To(Equal(&existingId))
			Expect(saved.EmergencyContacts[1].Id).ToNot(BeNil())
			Expect(*saved.EmergencyContacts[1].Id).ToNot(BeEmpty())
		})

		It("invalidates the cached profile", func() {
			repo.profiles[userId] = &users.Profile{UserId: &userId}

			_, err := service.GetProfile(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.SaveEmergencyInfo(context.Background(), userId, users.EmergencyInfo{
				BloodType: pointer.FromAny("AB-"),
			})
			Expect(err).ToNot(HaveOccurred())

			info, err := service.GetEmergencyInfo(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(info).ToNot(BeNil())
			Expect(info.BloodType).To(Equal(pointer.FromAny("AB-")))
		})

		It("does not cache anything when the write fails", func() {
			repo.updateErr = errors.New("write conflict")

			_, err := service.SaveEmergencyInfo(context.Background(), userId, users.EmergencyInfo{})
			Expect(err).To(HaveOccurred())
		})
	})
})
