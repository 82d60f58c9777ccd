package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	externalip "github.com/glendc/go-external-ip"
	"github.com/gorilla/securecookie"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/hkdf"
)

// StringFromEmbedFile reads a whole file from an embedded file system
func StringFromEmbedFile(embed fs.FS, filename string) (string, error) {
	file, err := embed.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ParseLogLevel maps a LOG_LEVEL value to a gommon log level
func ParseLogLevel(lvl string) (log.Lvl, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return log.DEBUG, fmt.Errorf("not a valid log level: %s", lvl)
	}
}

func LookupEnvOrString(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func LookupEnvOrBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		v, err := strconv.ParseBool(val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "LookupEnvOrBool[%s]: %v\n", key, err)
			return defaultVal
		}
		return v
	}
	return defaultVal
}

func LookupEnvOrInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		v, err := strconv.Atoi(val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "LookupEnvOrInt[%s]: %v\n", key, err)
			return defaultVal
		}
		return v
	}
	return defaultVal
}

func LookupEnvOrInt64(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "LookupEnvOrInt64[%s]: %v\n", key, err)
			return defaultVal
		}
		return v
	}
	return defaultVal
}

// SessionKeys returns the cookie hash and block keys. Both are derived from
// secret when one is configured, so sessions survive a restart. Without a
// secret they are random and every restart logs everybody out.
func SessionKeys(secret []byte) (hashKey, blockKey []byte, err error) {
	if len(secret) == 0 {
		return securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32), nil
	}
	if hashKey, err = deriveKey(secret, "session hash key", 64); err != nil {
		return nil, nil, err
	}
	if blockKey, err = deriveKey(secret, "session block key", 32); err != nil {
		return nil, nil, err
	}
	return hashKey, blockKey, nil
}

func deriveKey(secret []byte, info string, size int) ([]byte, error) {
	h := hkdf.New(sha256.New, secret, nil, []byte(info))
	k := make([]byte, size)
	if _, err := io.ReadFull(h, k); err != nil {
		return nil, fmt.Errorf("reading from HKDF: %w", err)
	}
	return k, nil
}

// GetPublicIP to get machine's public ip address
func GetPublicIP() (string, error) {
	// set time out to 5 seconds
	cfg := externalip.ConsensusConfig{}
	cfg.Timeout = time.Second * 5
	consensus := externalip.NewConsensus(&cfg, nil)

	// add trusted voters
	consensus.AddVoter(externalip.NewHTTPSource("http://checkip.amazonaws.com/"), 1)
	consensus.AddVoter(externalip.NewHTTPSource("http://whatismyip.akamai.com"), 1)
	consensus.AddVoter(externalip.NewHTTPSource("http://ifconfig.top"), 1)

	ip, err := consensus.ExternalIP()
	if err != nil {
		return "", err
	}
	return ip.String(), nil
}

// PublicURLFromIP builds the site URL for an external ip and the port of the bind address
func PublicURLFromIP(ip string, bindAddress string) string {
	port := ""
	if i := strings.LastIndex(bindAddress, ":"); i >= 0 {
		port = bindAddress[i+1:]
	}
	if port == "" || port == "80" {
		return "http://" + ip
	}
	return fmt.Sprintf("http://%s:%s", ip, port)
}
