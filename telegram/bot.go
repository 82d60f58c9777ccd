package telegram

import (
	"fmt"
	"time"

	"github.com/NicoNex/echotron/v3"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"github.com/ibrahimfakhry/portfolio/model"
)

// sender is the part of echotron.API the notifier needs
type sender interface {
	SendMessage(text string, chatID int64, opts *echotron.MessageOptions) (echotron.APIResponseMessage, error)
}

// floodBurst reports go out back to back before the flood wait applies
const floodBurst = 5

// Notifier reports new registrations to the site owner's chat
type Notifier struct {
	bot     sender
	chatID  int64
	limiter *rate.Limiter
}

// Start connects to the bot and returns a notifier for chatID. A missing or
// malformed token disables notifications and returns nil.
func Start(token string, chatID int64, floodWait time.Duration) (*Notifier, error) {
	if token == "" || len(token) < 30 || chatID == 0 {
		return nil, nil
	}

	bot := echotron.NewAPI(token)
	res, err := bot.GetMe()
	if err != nil {
		return nil, fmt.Errorf("unable to connect to telegram bot: %w", err)
	}
	if !res.Ok {
		return nil, fmt.Errorf("unable to connect to telegram bot: %s", res.Description)
	}
	log.Infof("[Telegram] Authorized as %s", res.Result.Username)

	return newNotifier(bot, chatID, floodWait), nil
}

func newNotifier(bot sender, chatID int64, floodWait time.Duration) *Notifier {
	limit := rate.Inf
	if floodWait > 0 {
		limit = rate.Every(floodWait)
	}
	return &Notifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(limit, floodBurst),
	}
}

// UserRegistered reports user to the chat. Reports over the flood limit are
// dropped and logged.
func (n *Notifier) UserRegistered(user model.User) error {
	if !n.allow(time.Now()) {
		log.Warnf("[Telegram] Flood wait, not reporting registration of %s", user.Username)
		return nil
	}

	res, err := n.bot.SendMessage(registrationMessage(user), n.chatID, nil)
	if err != nil {
		return fmt.Errorf("unable to send telegram message: %w", err)
	}
	if !res.Ok {
		return fmt.Errorf("unable to send telegram message: %s", res.Description)
	}
	return nil
}

func (n *Notifier) allow(now time.Time) bool {
	return n.limiter.AllowN(now, 1)
}

func registrationMessage(user model.User) string {
	return fmt.Sprintf("New registration on your site\nUsername: %s\nEmail: %s\nAt: %s",
		user.Username, user.Email, user.CreatedAt.UTC().Format(time.RFC1123))
}
