package env

import (
	"os"
	"strconv"

	"github.com/oldmonad/cloudsweep/pkg/config/cloud"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/parser"
	"go.uber.org/zap"
)

type Configurations struct {
	DebugMode         bool
	LogLevel          string
	ConfigPath        string
	CloudProviderType cloud.ProviderType
	HttpPort          int
	CloudConfig       cloud.ProviderConfig
	CloudProvider     CloudConfigProvider
	Settings          *parser.Settings
}

type CloudConfigProvider interface {
	NewProviderConfig(cloud.ProviderType) (cloud.ProviderConfig, error)
}

type DefaultCloudProvider struct{}

func (d *DefaultCloudProvider) NewProviderConfig(p cloud.ProviderType) (cloud.ProviderConfig, error) {
	return cloud.NewProviderConfig(p)
}

func NewConfiguration() *Configurations {
	return &Configurations{
		HttpPort:          8080,
		CloudProviderType: cloud.AWS,
		CloudProvider:     &DefaultCloudProvider{},
		Settings:          parser.DefaultSettings(),
	}
}

func (c *Configurations) LoadGeneralConfig() error {
	rawDebug := os.Getenv("DEBUG")
	if rawDebug != "" {
		mode, err := strconv.ParseBool(rawDebug)
		if err != nil {
			logger.GetLogger().Error("failed to set up configuration", zap.Error(err))
			logger.GetLogger().Info("Ensure that DEBUG is set to true or false")
			return errors.NewErrDebugParse(rawDebug, err)
		}
		c.DebugMode = mode
	}

	c.LogLevel = os.Getenv("LOG_LEVEL")
	if !logger.ValidLevel(c.LogLevel) {
		return errors.NewErrInvalidLogLevel(c.LogLevel)
	}
	c.ConfigPath = os.Getenv("CONFIG_PATH")

	if err := c.ValidateAndSetPort(); err != nil {
		logger.GetLogger().Error("Invalid port configuration", zap.Error(err))
		return err
	}

	if provider := os.Getenv("CLOUD_PROVIDER"); provider != "" {
		c.CloudProviderType = cloud.ProviderType(provider)
	}

	return nil
}

func (c *Configurations) LoadCloudConfig() error {
	cloudCfg, err := c.CloudProvider.NewProviderConfig(c.CloudProviderType)
	if err != nil {
		return err
	}
	c.CloudConfig = cloudCfg
	return nil
}

// LoadSettings reads the optional settings file at CONFIG_PATH. Without one
// the defaults stay in place.
func (c *Configurations) LoadSettings() error {
	if c.ConfigPath == "" {
		c.Settings = parser.DefaultSettings()
		return nil
	}

	p, err := parser.New(parser.TypeForPath(c.ConfigPath), c.ConfigPath)
	if err != nil {
		return errors.NewErrLoadSettings(c.ConfigPath, err)
	}

	content, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return errors.NewErrLoadSettings(c.ConfigPath, errors.NewReadFileError(c.ConfigPath, err))
	}

	settings, err := p.Parse(content)
	if err != nil {
		return errors.NewErrLoadSettings(c.ConfigPath, err)
	}

	logger.GetLogger().Debug("Loaded settings file", zap.String("path", c.ConfigPath))
	c.Settings = settings
	return nil
}

func (c *Configurations) ValidateGeneralConfig() error {
	if c.CloudConfig == nil {
		return errors.NewErrCloudConfigNotInit()
	}

	return c.CloudConfig.Validate()
}

func (c *Configurations) ValidateAndSetPort() error {
	portStr := os.Getenv("HTTP_PORT")
	if portStr == "" {
		return nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.NewErrPortParse(portStr, err)
	}

	if port < 1 || port > 65535 {
		return errors.NewErrPortOutOfRange(port)
	}

	c.HttpPort = port
	return nil
}

func (c *Configurations) PortToString() string {
	return strconv.Itoa(c.HttpPort)
}

func (c *Configurations) InitiateLogger() {
	logger.Init(c.DebugMode, c.LogLevel)
}

func SetupConfigurations() (*Configurations, error) {
	configurations := NewConfiguration()

	if err := configurations.LoadGeneralConfig(); err != nil {
		return nil, err
	}

	configurations.InitiateLogger()

	if err := configurations.LoadCloudConfig(); err != nil {
		return nil, err
	}

	if err := configurations.ValidateGeneralConfig(); err != nil {
		return nil, err
	}

	if err := configurations.LoadSettings(); err != nil {
		return nil, err
	}

	return configurations, nil
}
