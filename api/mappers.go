package api

import (
	"time"

	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/scores"
	"github.com/plemya-health/healthfeed/users"
)

type CheckinDto struct {
	Id           string  `json:"id"`
	Mood         *int    `json:"mood"`
	EnergyLevel  *int    `json:"energyLevel"`
	SleepQuality *int    `json:"sleepQuality"`
	StressLevel  *int    `json:"stressLevel"`
	Note         *string `json:"note,omitempty"`
	CheckedAt    string  `json:"checkedAt"`
}

type StreakDto struct {
	Streak int `json:"streak"`
}

type MeasurementDto struct {
	Id         string             `json:"id"`
	Type       *string            `json:"type"`
	Value      map[string]float64 `json:"value"`
	MeasuredAt string             `json:"measuredAt"`
}

type ScoreDto struct {
	Score           *float64 `json:"score"`
	ActivityScore   *float64 `json:"activityScore"`
	SleepScore      *float64 `json:"sleepScore"`
	NutritionScore  *float64 `json:"nutritionScore"`
	MentalScore     *float64 `json:"mentalScore"`
	RecoveryScore   *float64 `json:"recoveryScore"`
	BiometricsScore *float64 `json:"biometricsScore"`
	CalculatedAt    string   `json:"calculatedAt"`
}

type LabSummaryDto struct {
	Id            string `json:"id"`
	Category      string `json:"category"`
	CategoryName  string `json:"categoryName"`
	TestDate      string `json:"testDate"`
	ValueCount    int    `json:"valueCount"`
	AbnormalCount int    `json:"abnormalCount"`
}

type ProfileDto struct {
	UserId    string  `json:"userId"`
	FullName  *string `json:"fullName,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

func NewCheckinDto(row *checkins.Checkin) CheckinDto {
	dto := CheckinDto{
		Mood:         row.Mood,
		EnergyLevel:  row.EnergyLevel,
		SleepQuality: row.SleepQuality,
		StressLevel:  row.StressLevel,
		Note:         row.Note,
		CheckedAt:    formatTime(row.CheckedAt),
	}
	if row.Id != nil {
		dto.Id = row.Id.Hex()
	}
	return dto
}

func NewMeasurementDto(row *measurements.Measurement) MeasurementDto {
	dto := MeasurementDto{
		Type:       row.Type,
		Value:      row.Value,
		MeasuredAt: formatTime(row.MeasuredAt),
	}
	if row.Id != nil {
		dto.Id = row.Id.Hex()
	}
	return dto
}

func NewScoreDto(row *scores.Score) ScoreDto {
	return ScoreDto{
		Score:           row.Score,
		ActivityScore:   row.ActivityScore,
		SleepScore:      row.SleepScore,
		NutritionScore:  row.NutritionScore,
		MentalScore:     row.MentalScore,
		RecoveryScore:   row.RecoveryScore,
		BiometricsScore: row.BiometricsScore,
		CalculatedAt:    formatTime(row.CalculatedAt),
	}
}

func NewLabSummaryDto(row *labs.Result) LabSummaryDto {
	dto := LabSummaryDto{
		TestDate:      formatTime(row.TestDate),
		ValueCount:    len(row.Values),
		AbnormalCount: row.AbnormalCount(),
	}
	if row.Id != nil {
		dto.Id = row.Id.Hex()
	}
	if row.Category != nil {
		dto.Category = *row.Category
		dto.CategoryName = labs.CategoryName(*row.Category)
	}
	return dto
}

func NewProfileDto(profile *users.Profile) ProfileDto {
	dto := ProfileDto{
		FullName:  profile.FullName,
		BirthDate: profile.BirthDate,
	}
	if profile.UserId != nil {
		dto.UserId = *profile.UserId
	}
	return dto
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
