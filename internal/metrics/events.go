package metrics

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/skillmatch/internal/domain/events"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SavedJobsRecorder counts saved list changes published on the bus.
type SavedJobsRecorder struct {
	bus EventBus.Bus
}

func NewSavedJobsRecorder(bus EventBus.Bus) (*SavedJobsRecorder, error) {
	recorder := &SavedJobsRecorder{bus: bus}

	if err := bus.Subscribe(events.JobSavedTopic, recorder.onJobSaved); err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to saved jobs")
	}
	if err := bus.Subscribe(events.JobUnsavedTopic, recorder.onJobUnsaved); err != nil {
		_ = bus.Unsubscribe(events.JobSavedTopic, recorder.onJobSaved)
		return nil, errors.Wrap(err, "failed to subscribe to unsaved jobs")
	}
	return recorder, nil
}

func (r *SavedJobsRecorder) Stop() {
	if err := r.bus.Unsubscribe(events.JobSavedTopic, r.onJobSaved); err != nil {
		log.Warnf("failed to unsubscribe from saved jobs: %v", err)
	}
	if err := r.bus.Unsubscribe(events.JobUnsavedTopic, r.onJobUnsaved); err != nil {
		log.Warnf("failed to unsubscribe from unsaved jobs: %v", err)
	}
}

func (r *SavedJobsRecorder) onJobSaved(event events.JobSaved) {
	SavedJobsCounter.WithLabelValues("save").Inc()
	SavedJobMatchScore.Observe(float64(event.MatchScore))
	log.WithField("user_id", event.UserID).Debugf("job %s saved", event.JobID)
}

func (r *SavedJobsRecorder) onJobUnsaved(event events.JobUnsaved) {
	SavedJobsCounter.WithLabelValues("unsave").Inc()
	log.WithField("user_id", event.UserID).Debugf("job %s unsaved", event.JobID)
}
