package measurements_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/store"
	"github.com/plemya-health/healthfeed/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type repositoryFake struct {
	rows    []*measurements.Measurement
	listErr error
}

func (f *repositoryFake) List(_ context.Context, _ *measurements.Filter, page store.Pagination) ([]*measurements.Measurement, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := f.rows
	if page.Limit > 0 && len(rows) > page.Limit {
		rows = rows[:page.Limit]
	}
	return rows, nil
}

var _ = Describe("Latest", func() {
	var userId string
	var repo *repositoryFake
	var service measurements.Service

	measurement := func(measurementType string, daysAgo int) *measurements.Measurement {
		id := primitive.NewObjectID()
		measuredAt := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
		return &measurements.Measurement{
			Id:         &id,
			UserId:     &userId,
			Type:       &measurementType,
			MeasuredAt: &measuredAt,
		}
	}

	BeforeEach(func() {
		userId = test.Faker.UUID().V4()
		repo = &repositoryFake{}

		var err error
		service, err = measurements.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	It("keeps the newest measurement per type", func() {
		newest := measurement(measurements.TypeWeight, 1)
		repo.rows = []*measurements.Measurement{
			newest,
			measurement(measurements.TypeWeight, 5),
			measurement(measurements.TypePulse, 2),
		}

		latest, err := service.Latest(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(latest).To(HaveLen(2))
		Expect(latest[measurements.TypeWeight]).To(Equal(newest))
		Expect(latest).To(HaveKey(measurements.TypePulse))
	})

	It("omits types with no readings", func() {
		repo.rows = []*measurements.Measurement{measurement(measurements.TypeTemperature, 1)}

		latest, err := service.Latest(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(latest).To(HaveLen(1))
		Expect(latest).ToNot(HaveKey(measurements.TypeWeight))
	})

	It("skips rows without a type", func() {
		untyped := measurement(measurements.TypeWeight, 1)
		untyped.Type = nil
		repo.rows = []*measurements.Measurement{untyped}

		latest, err := service.Latest(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(latest).To(BeEmpty())
	})

	It("propagates repository failures", func() {
		repo.listErr = errors.New("connection reset")

		_, err := service.Latest(context.Background(), userId)
		Expect(err).To(HaveOccurred())
	})
})
