package diagnostics

// Questionnaire instruments supported by the bot. Scale thresholds are the
// published cutoffs for each instrument.

const (
	TestPHQ9  = "phq9"
	TestGAD7  = "gad7"
	TestPSS10 = "pss10"
)

type Scale struct {
	MaxScore float64
	Label    string
}

type Instrument struct {
	Name      string
	ShortName string
	MaxScore  float64
	Scales    []Scale
}

var Instruments = map[string]Instrument{
	TestPHQ9: {
		Name:      "PHQ-9 Depression Scale",
		ShortName: "PHQ-9",
		MaxScore:  27,
		Scales: []Scale{
			{4, "minimal"},
			{9, "mild"},
			{14, "moderate"},
			{19, "moderately severe"},
			{27, "severe"},
		},
	},
	TestGAD7: {
		Name:      "GAD-7 Anxiety Scale",
		ShortName: "GAD-7",
		MaxScore:  21,
		Scales: []Scale{
			{4, "minimal"},
			{9, "mild"},
			{14, "moderate"},
			{21, "severe"},
		},
	},
	TestPSS10: {
		Name:      "PSS-10 Perceived Stress Scale",
		ShortName: "PSS-10",
		MaxScore:  40,
		Scales: []Scale{
			{13, "low"},
			{26, "moderate"},
			{40, "high"},
		},
	},
}

func IsQuestionnaire(testId string) bool {
	_, ok := Instruments[testId]
	return ok
}

// Interpretation returns the severity label for a questionnaire score.
// Scores above the top threshold map to the last scale.
func Interpretation(testId string, score float64) (string, bool) {
	instrument, ok := Instruments[testId]
	if !ok {
		return "", false
	}
	for _, scale := range instrument.Scales {
		if score <= scale.MaxScore {
			return scale.Label, true
		}
	}
	return instrument.Scales[len(instrument.Scales)-1].Label, true
}

func questionnaireTestIds() []string {
	ids := make([]string, 0, len(Instruments))
	for id := range Instruments {
		ids = append(ids, id)
	}
	return ids
}
