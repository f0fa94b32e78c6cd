package bot

import (
	"sync"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/skillmatch/internal/logger"
	log "github.com/sirupsen/logrus"
)

type apiInterface interface {
	Send(chattable botApi.Chattable) (botApi.Message, error)
}

func sendWithLogError(api apiInterface, chattable botApi.Chattable) (botApi.Message, error) {
	msg, err := api.Send(chattable)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("error occured while sending message: %v", err)
	}
	return msg, err
}

// dialog consumes the user's free-text messages until it calls the done callback.
type dialog interface {
	Start()
	Handle(input string)
	OnDone(func())
}

// session holds the dialog a user is in. Commands run outside of it.
type session struct {
	mu     sync.Mutex
	active dialog
}

func (s *session) begin(d dialog) {
	s.mu.Lock()
	s.active = d
	s.mu.Unlock()

	d.OnDone(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.active == d {
			s.active = nil
		}
	})
	d.Start()
}

func (s *session) inDialog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// feed reports false when there is no dialog to take the input.
func (s *session) feed(input string) bool {
	s.mu.Lock()
	d := s.active
	s.mu.Unlock()

	if d == nil {
		return false
	}
	d.Handle(input)
	return true
}

type rule struct {
	holds func(input string) bool
	hint  string
}

// prompt is a single question answered by one message that must satisfy every rule.
type prompt struct {
	chatID   int64
	question string
	rules    []rule
}

func (p *prompt) ask() botApi.MessageConfig {
	msg := botApi.NewMessage(p.chatID, p.question)
	msg.ReplyMarkup = keyboardWithExit()
	return msg
}

// check returns the hint of the first broken rule.
func (p *prompt) check(input string) (string, bool) {
	for _, r := range p.rules {
		if !r.holds(input) {
			return r.hint, false
		}
	}
	return "", true
}
