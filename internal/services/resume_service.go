package services

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/skillmatch/internal/domain/events"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/logger"
	"github.com/maxaizer/skillmatch/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const resumeParseTimeout = 2 * time.Minute

type resumeParser interface {
	Parse(ctx context.Context, text string) (*models.ParsedResume, error)
}

type profileRepository interface {
	Upsert(ctx context.Context, profile models.Profile) error
}

type ResumeService struct {
	bus      EventBus.Bus
	parser   resumeParser
	profiles profileRepository
}

func NewResumeService(bus EventBus.Bus, parser resumeParser, profiles profileRepository) *ResumeService {
	return &ResumeService{bus: bus, parser: parser, profiles: profiles}
}

// Submit parses the resume in the background. The outcome is published as events.ResumeParsed.
func (s *ResumeService) Submit(userID int64, text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), resumeParseTimeout)
		defer cancel()

		skills, err := s.process(ctx, userID, text)
		if err != nil {
			metrics.ParsedResumesCounter.WithLabelValues("failed").Inc()
		} else {
			metrics.ParsedResumesCounter.WithLabelValues("parsed").Inc()
		}

		s.bus.Publish(events.ResumeParsedTopic, events.ResumeParsed{UserID: userID, Skills: skills, Err: err})
	}()
}

func (s *ResumeService) process(ctx context.Context, userID int64, text string) ([]string, error) {
	resume, err := s.parser.Parse(ctx, text)
	if err != nil {
		if !errors.Is(err, ErrEmptyResume) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("failed to parse resume of user %d: %v", userID, err)
		}
		return nil, err
	}

	profile := models.Profile{
		UserID:         userID,
		Name:           resume.Name,
		Skills:         models.JoinSkills(resume.Skills),
		Experience:     strings.Join(resume.Experience, "\n"),
		Education:      strings.Join(resume.Education, "\n"),
		ResumeUploaded: true,
	}

	if err = s.profiles.Upsert(ctx, profile); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save profile of user %d: %v", userID, err)
		return nil, err
	}

	log.Infof("resume of user %d parsed, %d skills found", userID, len(resume.Skills))
	return resume.Skills, nil
}
