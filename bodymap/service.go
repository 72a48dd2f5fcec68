package bodymap

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/sessions"
	"github.com/plemya-health/healthfeed/store"
	"go.uber.org/zap"
)

// sessionFinding is the shape a finding is expected to take inside the
// session's free-form findings payload.
type sessionFinding struct {
	ZoneId      string  `mapstructure:"zoneId"`
	ZoneName    string  `mapstructure:"zoneName"`
	Intensity   float64 `mapstructure:"intensity"`
	Description string  `mapstructure:"description"`
}

type service struct {
	sessions      sessions.Service
	sessionWindow int
	logger        *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(sessionsService sessions.Service, cfg *config.Config, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		sessions:      sessionsService,
		sessionWindow: cfg.SessionWindow,
		logger:        logger,
	}, nil
}

func (s *service) Findings(ctx context.Context, userId string) ([]*Finding, error) {
	filter := &sessions.Filter{
		UserId: &userId,
		Status: pointer.FromAny(sessions.StatusCompleted),
	}
	recent, err := s.sessions.List(ctx, filter, store.Pagination{Limit: s.sessionWindow})
	if err != nil {
		return nil, err
	}

	// Sessions are newest-first, so the first finding seen for a zone is
	// the most recent one and later duplicates are discarded.
	seen := mapset.NewSet[string]()
	var findings []*Finding
	for _, session := range recent {
		for _, raw := range s.decodeFindings(session) {
			if raw.ZoneId == "" || seen.Contains(raw.ZoneId) {
				continue
			}
			seen.Add(raw.ZoneId)

			zone := ZoneById(raw.ZoneId)
			label := zone.Label
			if label == raw.ZoneId && raw.ZoneName != "" {
				label = raw.ZoneName
			}

			findings = append(findings, &Finding{
				ZoneId:      raw.ZoneId,
				Label:       label,
				Severity:    SeverityForIntensity(raw.Intensity),
				Intensity:   raw.Intensity,
				Description: raw.Description,
				Source:      pointer.ToString(session.Source),
				SessionDate: formatSessionDate(session.SessionDate),
			})
		}
	}

	return findings, nil
}

// decodeFindings never fails; a session whose payload doesn't decode
// contributes nothing and the reduction continues with other sessions.
func (s *service) decodeFindings(session *sessions.Session) []sessionFinding {
	if session == nil || session.Findings == nil {
		return nil
	}

	var decoded []sessionFinding
	if err := mapstructure.WeakDecode(session.Findings, &decoded); err != nil {
		s.logger.Debugw("skipping session with unparseable findings",
			"sessionId", session.Id, "error", err)
		return nil
	}
	return decoded
}

func formatSessionDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
