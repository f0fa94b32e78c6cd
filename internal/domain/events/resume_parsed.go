package events

var ResumeParsedTopic = "ResumeParsedEvent"

// ResumeParsed is published once parsing of a submitted resume finishes. Err is set on failure.
type ResumeParsed struct {
	UserID int64
	Skills []string
	Err    error
}
