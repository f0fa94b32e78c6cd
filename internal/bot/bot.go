package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/skillmatch/internal/domain/events"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/logger"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

type recommender interface {
	BuildRecommendations(ctx context.Context, skills []string, location string, page int) (*models.Recommendations, error)
}

type profileRepository interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
	SetSkills(ctx context.Context, userID int64, skills []string) error
}

type savedJobsService interface {
	Save(ctx context.Context, userID int64, job models.ScoredJob) error
	Unsave(ctx context.Context, userID int64, jobID string) error
	List(ctx context.Context, userID int64) ([]models.SavedJob, error)
	SkillGap(ctx context.Context, userID int64, jobID string, skills []string) (*models.SavedJob, *models.SkillGap, error)
}

type Services struct {
	Recommender recommender
	Profiles    profileRepository
	SavedJobs   savedJobsService
	Resumes     resumeSubmitter
}

type Bot struct {
	tg                  *botApi.BotAPI
	api                 apiInterface
	mu                  sync.Mutex
	sessions            map[int64]*session
	bus                 EventBus.Bus
	services            Services
	lastRecommendations *gocache.Cache
}

const (
	findJobsCommandName   = "Find jobs"
	savedJobsCommandName  = "Saved jobs"
	backToMenuCommandName = "Back to menu"
)

// buttons send plain text, so their labels are mapped to commands
var globalCommands = map[string]string{
	findJobsCommandName:     "jobs",
	savedJobsCommandName:    "saved",
	uploadResumeCommandName: "resume",
	backToMenuCommandName:   "menu",
}

func NewBot(token string, bus EventBus.Bus, services Services) (*Bot, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	createdBot, err := newBot(api, bus, services)
	if err != nil {
		return nil, err
	}
	createdBot.tg = api
	return createdBot, nil
}

func newBot(api apiInterface, bus EventBus.Bus, services Services) (*Bot, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if services.Recommender == nil {
		return nil, errors.New("recommender is nil")
	}

	if services.Profiles == nil {
		return nil, errors.New("profile repository is nil")
	}

	if services.SavedJobs == nil {
		return nil, errors.New("saved jobs service is nil")
	}

	if services.Resumes == nil {
		return nil, errors.New("resume service is nil")
	}

	createdBot := &Bot{
		api:                 api,
		sessions:            make(map[int64]*session),
		bus:                 bus,
		services:            services,
		lastRecommendations: gocache.New(time.Hour, 2*time.Hour),
	}

	err := bus.Subscribe(events.ResumeParsedTopic, createdBot.onResumeParsed)
	if err != nil {
		return nil, err
	}
	return createdBot, nil
}

func (b *Bot) Run() {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.tg.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil || update.Message.From == nil {
			continue
		}

		if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
			continue
		}

		go b.handleMessage(update.Message)
	}
}

func (b *Bot) Stop() {
	if b.tg != nil {
		b.tg.StopReceivingUpdates()
	}
	if err := b.bus.Unsubscribe(events.ResumeParsedTopic, b.onResumeParsed); err != nil {
		log.Warnf("failed to unsubscribe from resume events: %v", err)
	}
}

func (b *Bot) handleMessage(message *botApi.Message) {

	cmd := message.Command()
	args := message.CommandArguments()
	if cmd == "" {
		if mapped, ok := globalCommands[message.Text]; ok {
			cmd = mapped
		}
	}

	if cmd != "" {
		b.handleCommand(message.From, message.Chat, cmd, args)
	} else {
		b.handleInput(message.From, message.Chat, message.Text)
	}
}

func (b *Bot) handleCommand(user *botApi.User, chat *botApi.Chat, command string, args string) {

	var response botApi.Chattable
	var text string
	var err error
	ctx := context.Background()

	switch command {
	case "start", "help":
		b.endSession(user.ID)
		response = menuMessage(chat.ID, helpMessage)
	case "menu":
		b.endSession(user.ID)
		response = menuMessage(chat.ID, "You are back in the main menu.")
	case "resume":
		b.sessionOf(user.ID).begin(newResumeDialog(b.api, chat.ID, user.ID, b.services.Resumes))
	case "skills":
		text, err = b.setSkills(ctx, user.ID, args)
	case "myskills":
		text, err = b.showSkills(ctx, user.ID)
	case "jobs":
		text, err = b.recommend(ctx, user.ID, args)
	case "save":
		text, err = b.save(ctx, user.ID, args)
	case "unsave":
		text, err = b.unsave(ctx, user.ID, args)
	case "saved":
		text, err = b.listSaved(ctx, user.ID)
	case "gap":
		text, err = b.gap(ctx, user.ID, args)
	default:
		text = "Unknown command! Send /help to see what I can do."
	}

	if err != nil {
		text = errorMessage(err)
	}

	if text != "" {
		msg := botApi.NewMessage(chat.ID, text)
		msg.DisableWebPagePreview = true
		response = msg
	}

	if response == nil {
		return
	}

	_, _ = sendWithLogError(b.api, response)
}

func (b *Bot) handleInput(user *botApi.User, chat *botApi.Chat, input string) {

	b.mu.Lock()
	s := b.sessions[user.ID]
	b.mu.Unlock()

	if s != nil && s.feed(input) {
		return
	}

	_, _ = sendWithLogError(b.api, botApi.NewMessage(chat.ID, "A command is expected. Send /help to see the list."))
}

func (b *Bot) onResumeParsed(event events.ResumeParsed) {

	var text string
	switch {
	case event.Err != nil:
		text = "I couldn't read your resume. Please try again with /resume or set skills with /skills."
	case len(event.Skills) == 0:
		text = "I found no skills in your resume. Set them manually with /skills Python, SQL."
	default:
		text = fmt.Sprintf("Your resume is processed!\n%s\n\nSend /jobs to see matching jobs.", formatSkills(event.Skills))
	}

	_, _ = sendWithLogError(b.api, botApi.NewMessage(event.UserID, text))
}

func (b *Bot) sessionOf(userID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sessions[userID] == nil {
		b.sessions[userID] = &session{}
	}
	return b.sessions[userID]
}

func (b *Bot) endSession(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, userID)
}

func (b *Bot) rememberRecommendations(userID int64, recs *models.Recommendations) {
	b.lastRecommendations.SetDefault(strconv.FormatInt(userID, 10), recs)
}

func (b *Bot) recalledRecommendations(userID int64) *models.Recommendations {
	if cached, found := b.lastRecommendations.Get(strconv.FormatInt(userID, 10)); found {
		return cached.(*models.Recommendations)
	}
	return nil
}

func menuMessage(chatID int64, text string) botApi.MessageConfig {
	msg := botApi.NewMessage(chatID, text)
	msg.ReplyMarkup = defaultReplyKeyboard()
	return msg
}

func defaultReplyKeyboard() botApi.ReplyKeyboardMarkup {
	return botApi.NewReplyKeyboard(
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton(findJobsCommandName),
			botApi.NewKeyboardButton(savedJobsCommandName),
			botApi.NewKeyboardButton(uploadResumeCommandName),
		),
	)
}

func keyboardWithExit() botApi.ReplyKeyboardMarkup {
	return botApi.NewReplyKeyboard(
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton(backToMenuCommandName),
		),
	)
}

func logDbError(err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Error(err)
}
