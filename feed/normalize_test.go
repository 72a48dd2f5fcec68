package feed_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/pointer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Normalize", func() {
	executedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	Describe("FromScan", func() {
		It("projects the scan onto a fixed 0-100 scale", func() {
			id := primitive.NewObjectID()
			result := feed.FromScan(&diagnostics.Result{
				Id:         &id,
				TestId:     pointer.FromAny("posture"),
				Score:      pointer.FromAny(82.5),
				ExecutedAt: &executedAt,
				Data: &diagnostics.ResultData{
					Recommendations: []string{"stretch daily"},
					Metrics: map[string]diagnostics.Metric{
						"shoulders": {Score: 70, Status: "warning"},
					},
				},
			})

			Expect(result.Id).To(Equal(id.Hex()))
			Expect(result.Kind).To(Equal(feed.KindBodyScan))
			Expect(result.Score).To(PointTo(Equal(82.5)))
			Expect(result.MaxScore).To(PointTo(Equal(float64(100))))
			Expect(result.Date).To(Equal("2026-03-14T10:30:00Z"))
			Expect(result.Recommendations).To(ConsistOf("stretch daily"))
			Expect(result.Metrics).To(HaveKey("shoulders"))
		})

		It("tolerates a missing data payload", func() {
			result := feed.FromScan(&diagnostics.Result{ExecutedAt: &executedAt})

			Expect(result.Recommendations).To(BeEmpty())
			Expect(result.Metrics).To(BeEmpty())
		})
	})

	Describe("FromQuestionnaire", func() {
		It("attaches the instrument ceiling and severity label", func() {
			result := feed.FromQuestionnaire(&diagnostics.Result{
				TestId:     pointer.FromAny(diagnostics.TestPHQ9),
				Score:      pointer.FromAny(float64(12)),
				ExecutedAt: &executedAt,
			})

			Expect(result.Kind).To(Equal(feed.KindQuestionnaire))
			Expect(result.Score).To(PointTo(Equal(float64(12))))
			Expect(result.MaxScore).To(PointTo(Equal(float64(27))))
			Expect(result.Title).To(PointTo(Equal("PHQ-9")))
			Expect(result.Severity).To(PointTo(Equal("moderate")))
		})

		It("keeps the raw score for unknown instruments", func() {
			result := feed.FromQuestionnaire(&diagnostics.Result{
				TestId:     pointer.FromAny("who5"),
				Score:      pointer.FromAny(float64(15)),
				ExecutedAt: &executedAt,
			})

			Expect(result.Score).To(PointTo(Equal(float64(15))))
			Expect(result.MaxScore).To(BeNil())
			Expect(result.Severity).To(BeNil())
		})
	})

	Describe("FromLab", func() {
		testDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

		It("scores the panel by its abnormal value count", func() {
			result := feed.FromLab(&labs.Result{
				Category: pointer.FromAny("blood_general"),
				TestDate: &testDate,
				Values: []labs.Value{
					{Name: "Hemoglobin", Value: 140, Status: labs.ValueStatusNormal},
					{Name: "WBC", Value: 12.4, Status: labs.ValueStatusHigh},
					{Name: "Platelets", Value: 110, Status: labs.ValueStatusLow},
				},
			})

			Expect(result.Kind).To(Equal(feed.KindLab))
			Expect(result.Score).To(PointTo(Equal(float64(2))))
			Expect(result.MaxScore).To(PointTo(Equal(float64(3))))
			Expect(result.Title).To(PointTo(Equal("Complete blood count")))
		})

		It("scores an all-normal panel as zero", func() {
			result := feed.FromLab(&labs.Result{
				TestDate: &testDate,
				Values: []labs.Value{
					{Name: "Hemoglobin", Value: 140, Status: labs.ValueStatusNormal},
				},
			})

			Expect(result.Score).To(PointTo(Equal(float64(0))))
			Expect(result.MaxScore).To(PointTo(Equal(float64(1))))
		})

		It("leaves the score nil when no values were extracted", func() {
			result := feed.FromLab(&labs.Result{TestDate: &testDate})

			Expect(result.Score).To(BeNil())
			Expect(result.MaxScore).To(BeNil())
		})
	})
})
