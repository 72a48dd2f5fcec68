package diagnostics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/pointer"
)

var _ = Describe("Interpretation", func() {
	DescribeTable("maps scores to the published cutoffs",
		func(testId string, score float64, expected string) {
			label, ok := diagnostics.Interpretation(testId, score)
			Expect(ok).To(BeTrue())
			Expect(label).To(Equal(expected))
		},
		Entry("phq9 minimal", diagnostics.TestPHQ9, 3.0, "minimal"),
		Entry("phq9 boundary", diagnostics.TestPHQ9, 4.0, "minimal"),
		Entry("phq9 mild", diagnostics.TestPHQ9, 7.0, "mild"),
		Entry("phq9 moderately severe", diagnostics.TestPHQ9, 17.0, "moderately severe"),
		Entry("phq9 ceiling", diagnostics.TestPHQ9, 27.0, "severe"),
		Entry("gad7 severe", diagnostics.TestGAD7, 18.0, "severe"),
		Entry("pss10 low", diagnostics.TestPSS10, 10.0, "low"),
		Entry("pss10 high", diagnostics.TestPSS10, 31.0, "high"),
	)

	It("clamps scores above the ceiling to the last scale", func() {
		label, ok := diagnostics.Interpretation(diagnostics.TestGAD7, 25)
		Expect(ok).To(BeTrue())
		Expect(label).To(Equal("severe"))
	})

	It("rejects unknown instruments", func() {
		_, ok := diagnostics.Interpretation("who5", 10)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("IsQuestionnaire", func() {
	It("discriminates questionnaire rows by test id", func() {
		questionnaire := diagnostics.Result{TestId: pointer.FromAny(diagnostics.TestPHQ9)}
		scan := diagnostics.Result{TestId: pointer.FromAny("posture")}
		untyped := diagnostics.Result{}

		Expect(questionnaire.IsQuestionnaire()).To(BeTrue())
		Expect(scan.IsQuestionnaire()).To(BeFalse())
		Expect(untyped.IsQuestionnaire()).To(BeFalse())
	})
})
