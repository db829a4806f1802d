package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the campuschat base configuration
type Config struct {
	Server Server `yaml:"server"`
	Chat   Chat   `yaml:"chat"`
	SMTP   SMTP   `yaml:"smtp"`
	GCM    GCM    `yaml:"gcm"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	ListenAddr    string `yaml:"listenAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Chat struct {
	SiteURL                     string `yaml:"siteURL"`
	EmailDomain                 string `yaml:"emailDomain"`
	BotID                       string `yaml:"botID"`
	ConfirmationExpirationHours int    `yaml:"confirmationExpirationHours"`
	DebugAutoActivateKeys       bool   `yaml:"debugAutoActivateKeys"`
	EmailConfirmationsEnabled   bool   `yaml:"emailConfirmationsEnabled"`
	MessageExpirationDays       int    `yaml:"messageExpirationDays"`
}

type SMTP struct {
	Addr string `yaml:"addr"`
	From string `yaml:"from"`
}

type GCM struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"apiKey"`
	Endpoint string `yaml:"endpoint"`
}

// Load loads campuschat config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	c.applyDefaults()

	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}
	if c.Chat.EmailDomain == "" {
		c.Chat.EmailDomain = "mytum.de"
	}
	if c.Chat.BotID == "" {
		c.Chat.BotID = "bot"
	}
	if c.Chat.ConfirmationExpirationHours == 0 {
		c.Chat.ConfirmationExpirationHours = 24
	}
	if c.GCM.Endpoint == "" {
		c.GCM.Endpoint = "https://android.googleapis.com/gcm/send"
	}
}
