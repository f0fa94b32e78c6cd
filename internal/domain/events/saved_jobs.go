package events

var (
	JobSavedTopic   = "JobSavedEvent"
	JobUnsavedTopic = "JobUnsavedEvent"
)

type JobSaved struct {
	UserID     int64
	JobID      string
	MatchScore int
}

type JobUnsaved struct {
	UserID int64
	JobID  string
}
