package bodymap_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/plemya-health/healthfeed/bodymap"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/sessions"
	"github.com/plemya-health/healthfeed/store"
	"github.com/plemya-health/healthfeed/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type sessionsFake struct {
	rows    []*sessions.Session
	listErr error
}

func (f *sessionsFake) List(_ context.Context, filter *sessions.Filter, page store.Pagination) ([]*sessions.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*sessions.Session
	for _, row := range f.rows {
		if filter.Status != nil && (row.Status == nil || *row.Status != *filter.Status) {
			continue
		}
		result = append(result, row)
	}
	if page.Limit > 0 && len(result) > page.Limit {
		result = result[:page.Limit]
	}
	return result, nil
}

var _ = Describe("Findings", func() {
	var userId string
	var sessionsService *sessionsFake
	var service bodymap.Service

	session := func(daysAgo int, status string, findings interface{}) *sessions.Session {
		id := primitive.NewObjectID()
		sessionDate := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
		return &sessions.Session{
			Id:          &id,
			UserId:      &userId,
			Source:      pointer.FromAny("massage"),
			Status:      &status,
			Findings:    findings,
			SessionDate: &sessionDate,
		}
	}

	finding := func(zoneId string, intensity float64) map[string]interface{} {
		return map[string]interface{}{
			"zoneId":    zoneId,
			"intensity": intensity,
		}
	}

	BeforeEach(func() {
		userId = test.Faker.UUID().V4()
		sessionsService = &sessionsFake{}

		var err error
		service, err = bodymap.NewService(sessionsService, &config.Config{SessionWindow: 20}, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	It("keeps only the most recent finding per zone", func() {
		sessionsService.rows = []*sessions.Session{
			session(1, sessions.StatusCompleted, []interface{}{finding("neck", 8)}),
			session(10, sessions.StatusCompleted, []interface{}{finding("neck", 2), finding("lower_back", 5)}),
		}

		findings, err := service.Findings(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(findings).To(HaveLen(2))
		Expect(findings[0].ZoneId).To(Equal("neck"))
		Expect(findings[0].Intensity).To(Equal(float64(8)))
		Expect(findings[0].Severity).To(Equal(bodymap.SeverityConcern))
		Expect(findings[1].ZoneId).To(Equal("lower_back"))
		Expect(findings[1].Severity).To(Equal(bodymap.SeverityAttention))
	})

	It("resolves zone labels from the catalog", func() {
		sessionsService.rows = []*sessions.Session{
			session(1, sessions.StatusCompleted, []interface{}{finding("upper_back", 3)}),
		}

		findings, err := service.Findings(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(findings).To(HaveLen(1))
		Expect(findings[0].Label).To(Equal("Upper back"))
		Expect(findings[0].Severity).To(Equal(bodymap.SeverityNormal))
	})

	It("falls back to the recorded zone name for unknown zones", func() {
		raw := finding("jaw", 4)
		raw["zoneName"] = "Jaw"
		sessionsService.rows = []*sessions.Session{
			session(1, sessions.StatusCompleted, []interface{}{raw}),
		}

		findings, err := service.Findings(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(findings).To(HaveLen(1))
		Expect(findings[0].Label).To(Equal("Jaw"))
	})

	It("skips sessions with unparseable findings", func() {
		sessionsService.rows = []*sessions.Session{
			session(1, sessions.StatusCompleted, "corrupted payload"),
			session(2, sessions.StatusCompleted, []interface{}{finding("neck", 5)}),
		}

		findings, err := service.Findings(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(findings).To(HaveLen(1))
		Expect(findings[0].ZoneId).To(Equal("neck"))
	})

	It("ignores findings without a zone id", func() {
		sessionsService.rows = []*sessions.Session{
			session(1, sessions.StatusCompleted, []interface{}{map[string]interface{}{"intensity": 5}}),
		}

		findings, err := service.Findings(context.Background(), userId)
		Expect(err).ToNot(HaveOccurred())
		Expect(findings).To(BeEmpty())
	})

	It("propagates session store failures", func() {
		sessionsService.listErr = errors.New("connection reset")

		_, err := service.Findings(context.Background(), userId)
		Expect(err).To(HaveOccurred())
	})
})
