package main

import (
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/ibrahimfakhry/portfolio/auth"
	"github.com/ibrahimfakhry/portfolio/emailer"
	"github.com/ibrahimfakhry/portfolio/handler"
	"github.com/ibrahimfakhry/portfolio/imaging"
	"github.com/ibrahimfakhry/portfolio/router"
	"github.com/ibrahimfakhry/portfolio/store/memdb"
	"github.com/ibrahimfakhry/portfolio/telegram"
	"github.com/ibrahimfakhry/portfolio/util"
	"github.com/ibrahimfakhry/portfolio/web"
)

var (
	// command-line banner information
	appVersion = "development"
	gitCommit  = "N/A"
	gitRef     = "N/A"
	buildTime  = time.Now().UTC().Format("01-02-2006 15:04:05")
	// configuration variables
	flagBindAddress       = util.DefaultBindAddress
	flagSessionSecret     string
	flagImagesDir         = util.DefaultImagesDir
	flagPublicURL         string
	flagDetectPublicIP    bool
	flagBcryptCost        = util.DefaultBcryptCost
	flagSendgridApiKey    string
	flagEmailFrom         string
	flagEmailFromName     = util.DefaultEmailFromName
	flagSmtpHostname      string
	flagSmtpPort          = util.DefaultSmtpPort
	flagSmtpUsername      string
	flagSmtpPassword      string
	flagSmtpAuthType      = "NONE"
	flagSmtpEncryption    = "STARTTLS"
	flagSmtpNoTLSCheck    bool
	flagTelegramToken     string
	flagTelegramChatID    int64
	flagTelegramFloodWait = 60
)

func init() {

	// command-line flags and env variables
	flag.StringVar(&flagBindAddress, "bind-address", util.LookupEnvOrString("BIND_ADDRESS", flagBindAddress), "Address:Port to which the app will be bound.")
	flag.StringVar(&flagSessionSecret, "session-secret", util.LookupEnvOrString("SESSION_SECRET", flagSessionSecret), "Secret the session cookie keys are derived from. Sessions survive restarts only when it is set.")
	flag.StringVar(&flagImagesDir, "images-dir", util.LookupEnvOrString("IMAGES_DIR", flagImagesDir), "Directory served under /static/images.")
	flag.StringVar(&flagPublicURL, "public-url", util.LookupEnvOrString("PUBLIC_URL", flagPublicURL), "Public URL of the site, shown as a QR code.")
	flag.BoolVar(&flagDetectPublicIP, "detect-public-ip", util.LookupEnvOrBool("DETECT_PUBLIC_IP", flagDetectPublicIP), "Derive the public URL from the machine's external IP when it is not set.")
	flag.IntVar(&flagBcryptCost, "bcrypt-cost", util.LookupEnvOrInt("BCRYPT_COST", flagBcryptCost), "The bcrypt cost used to hash new passwords.")
	flag.StringVar(&flagSendgridApiKey, "sendgrid-api-key", util.LookupEnvOrString("SENDGRID_API_KEY", flagSendgridApiKey), "Your sendgrid api key.")
	flag.StringVar(&flagEmailFrom, "email-from", util.LookupEnvOrString("EMAIL_FROM_ADDRESS", flagEmailFrom), "'From' email address.")
	flag.StringVar(&flagEmailFromName, "email-from-name", util.LookupEnvOrString("EMAIL_FROM_NAME", flagEmailFromName), "'From' email name.")
	flag.StringVar(&flagSmtpHostname, "smtp-hostname", util.LookupEnvOrString("SMTP_HOSTNAME", flagSmtpHostname), "SMTP Hostname")
	flag.IntVar(&flagSmtpPort, "smtp-port", util.LookupEnvOrInt("SMTP_PORT", flagSmtpPort), "SMTP Port")
	flag.StringVar(&flagSmtpUsername, "smtp-username", util.LookupEnvOrString("SMTP_USERNAME", flagSmtpUsername), "SMTP Username")
	flag.StringVar(&flagSmtpPassword, "smtp-password", util.LookupEnvOrString("SMTP_PASSWORD", flagSmtpPassword), "SMTP Password")
	flag.StringVar(&flagSmtpAuthType, "smtp-auth-type", util.LookupEnvOrString("SMTP_AUTH_TYPE", flagSmtpAuthType), "SMTP Auth Type : PLAIN, LOGIN or NONE.")
	flag.StringVar(&flagSmtpEncryption, "smtp-encryption", util.LookupEnvOrString("SMTP_ENCRYPTION", flagSmtpEncryption), "SMTP Encryption : NONE, SSL, SSLTLS, TLS or STARTTLS (by default)")
	flag.BoolVar(&flagSmtpNoTLSCheck, "smtp-no-tls-check", util.LookupEnvOrBool("SMTP_NO_TLS_CHECK", flagSmtpNoTLSCheck), "Disable TLS verification for SMTP. This is potentially dangerous.")
	flag.StringVar(&flagTelegramToken, "telegram-token", util.LookupEnvOrString("TELEGRAM_TOKEN", flagTelegramToken), "Telegram bot token used to report new registrations.")
	flag.Int64Var(&flagTelegramChatID, "telegram-chat-id", util.LookupEnvOrInt64("TELEGRAM_CHAT_ID", flagTelegramChatID), "Telegram chat that receives registration reports.")
	flag.IntVar(&flagTelegramFloodWait, "telegram-flood-wait", util.LookupEnvOrInt("TELEGRAM_FLOOD_WAIT", flagTelegramFloodWait), "Seconds between two registration reports once a burst of reports has been sent.")
	flag.Parse()

	// update runtime config
	util.BindAddress = flagBindAddress
	util.SessionSecret = []byte(flagSessionSecret)
	util.ImagesDir = flagImagesDir
	util.PublicURL = flagPublicURL
	util.DetectPublicIP = flagDetectPublicIP
	util.BcryptCost = flagBcryptCost
	util.SendgridApiKey = flagSendgridApiKey
	util.EmailFrom = flagEmailFrom
	util.EmailFromName = flagEmailFromName
	util.SmtpHostname = flagSmtpHostname
	util.SmtpPort = flagSmtpPort
	util.SmtpUsername = flagSmtpUsername
	util.SmtpPassword = flagSmtpPassword
	util.SmtpAuthType = flagSmtpAuthType
	util.SmtpEncryption = flagSmtpEncryption
	util.SmtpNoTLSCheck = flagSmtpNoTLSCheck
	util.TelegramToken = flagTelegramToken
	util.TelegramChatID = flagTelegramChatID

	// print app information
	fmt.Println("Portfolio")
	fmt.Println("App Version\t:", appVersion)
	fmt.Println("Git Commit\t:", gitCommit)
	fmt.Println("Git Ref\t\t:", gitRef)
	fmt.Println("Build Time\t:", buildTime)
	fmt.Println("Bind address\t:", util.BindAddress)
	fmt.Println("Images dir\t:", util.ImagesDir)
	fmt.Println("Public URL\t:", util.PublicURL)
	fmt.Println("Email from\t:", util.EmailFrom)
	fmt.Println("Email from name\t:", util.EmailFromName)
	fmt.Println("Telegram\t:", util.TelegramToken != "")
	//fmt.Println("Session secret\t:", util.SessionSecret)
}

func main() {
	// set app extra data
	extraData := make(map[string]string)
	extraData["appVersion"] = appVersion

	db := memdb.New()
	if err := db.Init(); err != nil {
		log.Fatal("Cannot init credential store: ", err)
	}

	svc := auth.NewService(db, notifierOptions(util.BcryptCost)...)

	manifest, err := imaging.OpenManifest(util.ImagesDir)
	if err != nil {
		log.Fatal("Cannot open gallery manifest: ", err)
	}

	hashKey, blockKey, err := util.SessionKeys(util.SessionSecret)
	if err != nil {
		log.Fatal("Cannot derive session keys: ", err)
	}
	app := newApp(svc, manifest, siteInfo(), extraData, hashKey, blockKey)

	app.Logger.Fatal(app.Start(util.BindAddress))
}

// newApp registers the routes on a fresh router
func newApp(svc *auth.Service, gallery handler.GalleryLister, site handler.SiteInfo,
	extraData map[string]string, hashKey, blockKey []byte) *echo.Echo {
	app := router.New(web.Templates(), extraData, hashKey, blockKey)

	app.GET("/", handler.Index(gallery, site))
	app.GET("/register", handler.RegisterPage())
	app.POST("/register", handler.Register(svc), handler.FormContentType)
	app.GET("/login", handler.LoginPage())
	app.POST("/login", handler.Login(svc), handler.FormContentType)
	app.GET("/logout", handler.Logout())

	// images generated by imgprep, then the embedded css and js
	app.Static("/static/images", util.ImagesDir)
	assetHandler := http.FileServer(http.FS(web.Assets()))
	app.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", assetHandler)))

	return app
}

func notifierOptions(cost int) []auth.Option {
	opts := []auth.Option{auth.WithHashCost(cost)}

	mailer := emailer.FromConfig(util.SmtpHostname, util.SmtpPort, util.SmtpUsername, util.SmtpPassword, util.SmtpNoTLSCheck,
		util.SmtpAuthType, util.SmtpEncryption, util.SendgridApiKey, util.EmailFromName, util.EmailFrom)
	if mailer != nil {
		opts = append(opts, auth.WithNotifier(emailer.NewWelcomeMailer(mailer, util.WelcomeSubject, util.WelcomeTemplate)))
	}

	bot, err := telegram.Start(util.TelegramToken, util.TelegramChatID, time.Duration(flagTelegramFloodWait)*time.Second)
	if err != nil {
		log.Warn("Telegram notifications disabled: ", err)
	}
	if bot != nil {
		opts = append(opts, auth.WithNotifier(bot))
	}
	return opts
}

func siteInfo() handler.SiteInfo {
	publicURL := util.PublicURL
	if publicURL == "" && util.DetectPublicIP {
		ip, err := util.GetPublicIP()
		if err != nil {
			log.Warn("Cannot detect public ip address: ", err)
		} else {
			publicURL = util.PublicURLFromIP(ip, util.BindAddress)
		}
	}
	if publicURL == "" {
		return handler.SiteInfo{}
	}

	qr, err := util.QRCodeDataURI(publicURL, 256)
	if err != nil {
		log.Warn("Cannot generate QR code: ", err)
		return handler.SiteInfo{PublicURL: publicURL}
	}
	return handler.SiteInfo{PublicURL: publicURL, QRCode: template.URL(qr)}
}
