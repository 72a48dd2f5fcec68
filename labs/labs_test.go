package labs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/plemya-health/healthfeed/labs"
)

var _ = Describe("AbnormalCount", func() {
	It("counts values outside the reference range", func() {
		result := labs.Result{Values: []labs.Value{
			{Name: "Hemoglobin", Value: 140, Status: labs.ValueStatusNormal},
			{Name: "WBC", Value: 12.4, Status: labs.ValueStatusHigh},
			{Name: "Platelets", Value: 110, Status: labs.ValueStatusLow},
		}}

		Expect(result.AbnormalCount()).To(Equal(2))
	})

	It("is zero for an empty panel", func() {
		Expect((&labs.Result{}).AbnormalCount()).To(Equal(0))
	})
})

var _ = Describe("CategoryName", func() {
	It("resolves known categories", func() {
		Expect(labs.CategoryName("blood_general")).To(Equal("Complete blood count"))
		Expect(labs.CategoryName("hormones")).To(Equal("Hormone panel"))
	})

	It("falls back to a generic label", func() {
		Expect(labs.CategoryName("genetics")).To(Equal("Lab results"))
	})
})
