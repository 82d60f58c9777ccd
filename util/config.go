package util

// Runtime config
var (
	BindAddress    string
	SessionSecret  []byte
	ImagesDir      string
	PublicURL      string
	DetectPublicIP bool
	BcryptCost     int

	SendgridApiKey string
	EmailFrom      string
	EmailFromName  string
	SmtpHostname   string
	SmtpPort       int
	SmtpUsername   string
	SmtpPassword   string
	SmtpNoTLSCheck bool
	SmtpEncryption string
	SmtpAuthType   string

	TelegramToken  string
	TelegramChatID int64
)

const (
	DefaultBindAddress   = "0.0.0.0:5001"
	DefaultImagesDir     = "static/images"
	DefaultBcryptCost    = 12
	DefaultEmailFromName = "Ibrahim Fakhry"
	DefaultSmtpPort      = 25

	LogLevel = "LOG_LEVEL"

	SessionName     = "session"
	SessionUserKey  = "username"
	WelcomeSubject  = "Welcome aboard"
	WelcomeTemplate = `Hi %s,</br>
<p>thanks for registering on my site. You can now log in with your username.</p>

<p>Best</p>
`
)
