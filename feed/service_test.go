package feed_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/scores"
	"github.com/plemya-health/healthfeed/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var _ = Describe("Feed service", func() {
	var userId string
	var diagnosticsService *diagnosticsFake
	var labsService *labsFake
	var checkinsService *checkinsFake
	var measurementsService *measurementsFake
	var sessionsService *sessionsFake
	var scoresService *scoresFake
	var service feed.Service

	day := func(d int) *time.Time {
		t := time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
		return &t
	}

	scan := func(score float64, executedAt *time.Time) *diagnostics.Result {
		id := primitive.NewObjectID()
		return &diagnostics.Result{
			Id:         &id,
			UserId:     &userId,
			TestId:     pointer.FromAny("posture"),
			Score:      &score,
			ExecutedAt: executedAt,
		}
	}

	questionnaire := func(testId string, score float64, executedAt *time.Time) *diagnostics.Result {
		id := primitive.NewObjectID()
		return &diagnostics.Result{
			Id:         &id,
			UserId:     &userId,
			TestId:     &testId,
			Score:      &score,
			ExecutedAt: executedAt,
		}
	}

	lab := func(testDate *time.Time, values ...labs.Value) *labs.Result {
		id := primitive.NewObjectID()
		return &labs.Result{
			Id:       &id,
			UserId:   &userId,
			Category: pointer.FromAny("blood_general"),
			Values:   values,
			TestDate: testDate,
		}
	}

	BeforeEach(func() {
		userId = test.Faker.UUID().V4()
		diagnosticsService = &diagnosticsFake{}
		labsService = &labsFake{}
		checkinsService = &checkinsFake{}
		measurementsService = &measurementsFake{}
		sessionsService = &sessionsFake{}
		scoresService = &scoresFake{}

		var err error
		service, err = feed.NewService(feed.Params{
			Diagnostics:  diagnosticsService,
			Labs:         labsService,
			Checkins:     checkinsService,
			Measurements: measurementsService,
			Sessions:     sessionsService,
			Scores:       scoresService,
			Config:       &config.Config{DefaultFeedLimit: 20},
			Logger:       zap.NewNop().Sugar(),
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("AllResults", func() {
		It("merges every category newest-first", func() {
			diagnosticsService.rows = []*diagnostics.Result{
				scan(80, day(1)),
				questionnaire(diagnostics.TestGAD7, 6, day(3)),
			}
			labsService.rows = []*labs.Result{
				lab(day(2), labs.Value{Name: "Hemoglobin", Value: 140, Status: labs.ValueStatusNormal}),
			}

			results, err := service.AllResults(context.Background(), userId, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(3))
			Expect(results[0].Kind).To(Equal(feed.KindQuestionnaire))
			Expect(results[1].Kind).To(Equal(feed.KindLab))
			Expect(results[2].Kind).To(Equal(feed.KindBodyScan))
		})

		It("truncates to the limit after merging", func() {
			diagnosticsService.rows = []*diagnostics.Result{
				scan(80, day(1)),
				scan(75, day(4)),
				questionnaire(diagnostics.TestPHQ9, 9, day(3)),
			}

			results, err := service.AllResults(context.Background(), userId, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Kind).To(Equal(feed.KindBodyScan))
			Expect(results[0].Score).To(PointTo(Equal(float64(75))))
			Expect(results[1].Kind).To(Equal(feed.KindQuestionnaire))
		})

		It("returns an empty feed for a non-positive limit", func() {
			diagnosticsService.rows = []*diagnostics.Result{scan(80, day(1))}

			results, err := service.AllResults(context.Background(), userId, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(BeEmpty())
		})

		It("keeps serving other categories when one source fails", func() {
			diagnosticsService.rows = []*diagnostics.Result{scan(80, day(1))}
			labsService.listErr = errors.New("connection reset")

			results, err := service.AllResults(context.Background(), userId, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].Kind).To(Equal(feed.KindBodyScan))
		})

		It("sorts results with unparseable dates last", func() {
			undated := scan(50, nil)
			diagnosticsService.rows = []*diagnostics.Result{undated, scan(80, day(2))}

			results, err := service.AllResults(context.Background(), userId, 10)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[1].Id).To(Equal(undated.Id.Hex()))
		})
	})

	Describe("Result", func() {
		It("resolves a diagnostic id", func() {
			row := questionnaire(diagnostics.TestPHQ9, 4, day(1))
			diagnosticsService.rows = []*diagnostics.Result{row}

			result, err := service.Result(context.Background(), userId, row.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Kind).To(Equal(feed.KindQuestionnaire))
			Expect(result.Id).To(Equal(row.Id.Hex()))
		})

		It("falls back to lab results when diagnostics misses", func() {
			row := lab(day(1), labs.Value{Name: "Glucose", Value: 6.8, Status: labs.ValueStatusHigh})
			labsService.rows = []*labs.Result{row}

			result, err := service.Result(context.Background(), userId, row.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Kind).To(Equal(feed.KindLab))
		})

		It("does not leak another user's result", func() {
			row := scan(80, day(1))
			diagnosticsService.rows = []*diagnostics.Result{row}

			_, err := service.Result(context.Background(), test.Faker.UUID().V4(), row.Id.Hex())
			Expect(err).To(MatchError(feed.ErrNotFound))
		})

		It("returns a not found error for unknown ids", func() {
			_, err := service.Result(context.Background(), userId, primitive.NewObjectID().Hex())
			Expect(err).To(MatchError(feed.ErrNotFound))
		})
	})

	Describe("Dashboard", func() {
		score := func(value float64, calculatedAt *time.Time) *scores.Score {
			return &scores.Score{Score: &value, CalculatedAt: calculatedAt}
		}

		It("assembles results, score trend and recent events", func() {
			diagnosticsService.rows = []*diagnostics.Result{scan(80, day(5))}
			scoresService.latest = score(72, day(7))
			scoresService.history = []*scores.Score{
				score(72, day(7)),
				score(70, day(5)),
				score(65, day(1)),
			}

			dashboard, err := service.Dashboard(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.Results).To(HaveLen(1))
			Expect(dashboard.HealthScore).ToNot(BeNil())
			Expect(dashboard.HealthScore.Score).To(PointTo(Equal(float64(72))))
			Expect(dashboard.ScoreTrend).To(PointTo(Equal(float64(7))))
		})

		It("omits the trend when the history window is too short", func() {
			scoresService.latest = score(72, day(7))
			scoresService.history = []*scores.Score{score(72, day(7))}

			dashboard, err := service.Dashboard(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.HealthScore).ToNot(BeNil())
			Expect(dashboard.ScoreTrend).To(BeNil())
		})

		It("renders without a health score", func() {
			dashboard, err := service.Dashboard(context.Background(), userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(dashboard.HealthScore).To(BeNil())
			Expect(dashboard.Results).To(BeEmpty())
			Expect(dashboard.RecentEvents).To(BeEmpty())
		})
	})
})
