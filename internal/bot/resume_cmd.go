package bot

import (
	"strings"
	"unicode/utf8"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	uploadResumeCommandName = "Upload resume"
	minResumeLength         = 50
)

type resumeSubmitter interface {
	Submit(userID int64, text string)
}

// resumeDialog asks for the resume text and hands it to the parser. The result arrives later
// as a ResumeParsed event.
type resumeDialog struct {
	api     apiInterface
	userID  int64
	resumes resumeSubmitter
	prompt  prompt
	done    func()
}

func newResumeDialog(api apiInterface, chatID, userID int64, resumes resumeSubmitter) *resumeDialog {
	return &resumeDialog{
		api:     api,
		userID:  userID,
		resumes: resumes,
		prompt: prompt{
			chatID:   chatID,
			question: "Paste the text of your resume in a single message.",
			rules: []rule{{
				holds: func(input string) bool {
					return utf8.RuneCountInString(strings.TrimSpace(input)) >= minResumeLength
				},
				hint: "This looks too short for a resume. Paste the full text, please.",
			}},
		},
	}
}

func (d *resumeDialog) OnDone(callback func()) {
	d.done = callback
}

func (d *resumeDialog) Start() {
	_, _ = sendWithLogError(d.api, d.prompt.ask())
}

func (d *resumeDialog) Handle(input string) {

	if hint, ok := d.prompt.check(input); !ok {
		_, _ = sendWithLogError(d.api, botApi.NewMessage(d.prompt.chatID, hint))
		return
	}

	d.resumes.Submit(d.userID, strings.TrimSpace(input))

	msg := menuMessage(d.prompt.chatID, "Got it! Extracting your skills, I will message you when it's done.")
	_, _ = sendWithLogError(d.api, msg)

	if d.done != nil {
		d.done()
	}
}
