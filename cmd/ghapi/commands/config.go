package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/internal/logging"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
	"github.com/timmik994/GitHubApiLib/pkg/ghclient"
	"gopkg.in/yaml.v3"
)

const (
	configKeyAPI       = "api"
	configKeyToken     = "token"
	configKeyOutput    = "output"
	configKeyUserAgent = "user_agent"
	configKeyRetryMax  = "retry_max"
)

// Config represents the CLI configuration.
type Config struct {
	API       string `json:"api,omitempty"        yaml:"api,omitempty"`
	Token     string `json:"token,omitempty"      yaml:"token,omitempty"`
	Output    string `json:"output"               yaml:"output"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	RetryMax  int    `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage ghapi CLI configuration such as the API endpoint, token and output format",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			return showConfig(cmd.OutOrStdout(), viper.GetString("output"), config)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api, token, output, user_agent, retry_max",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), viper.GetString("output"), "Set", key, displayValue(key, value))
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Reset a configuration value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), viper.GetString("output"), "Unset", key, "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), viper.GetString("output"), "Cleared", "all configuration", "")
		},
	}
}

func loadConfig() *Config {
	output := viper.GetString("output")
	if output == "" {
		output = constants.FormatTable
	}

	return &Config{
		API:       viper.GetString(configKeyAPI),
		Token:     viper.GetString(configKeyToken),
		Output:    output,
		UserAgent: viper.GetString(configKeyUserAgent),
		RetryMax:  viper.GetInt(configKeyRetryMax),
	}
}

// configFilePath returns the file in use, or ~/.ghapi/config.yml when none was loaded.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".ghapi", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Keep the running process consistent with what was written.
	viper.Set(configKeyAPI, config.API)
	viper.Set(configKeyToken, config.Token)
	viper.Set(configKeyOutput, config.Output)
	viper.Set(configKeyUserAgent, config.UserAgent)
	viper.Set(configKeyRetryMax, config.RetryMax)

	return nil
}

// setConfigValue validates value and stores it under key.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case configKeyAPI:
		config.API = ghclient.NormalizeEndpoint(value)
	case configKeyToken:
		config.Token = value
	case configKeyOutput:
		if !isValidOutput(value) {
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	case configKeyUserAgent:
		config.UserAgent = value
	case configKeyRetryMax:
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%w: %s", constants.ErrInvalidRetryMax, value)
		}

		config.RetryMax = retryMax
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// unsetConfigValue resets key to its default.
func unsetConfigValue(config *Config, key string) error {
	switch key {
	case configKeyAPI:
		config.API = ""
	case configKeyToken:
		config.Token = ""
	case configKeyOutput:
		config.Output = constants.FormatTable
	case configKeyUserAgent:
		config.UserAgent = ""
	case configKeyRetryMax:
		config.RetryMax = 0
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func isValidOutput(output string) bool {
	switch output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return true
	default:
		return false
	}
}

// displayValue hides secrets in command output.
func displayValue(key, value string) string {
	if key == configKeyToken && value != "" {
		return constants.MaskedSecret
	}

	return value
}

func showConfig(w io.Writer, format string, config *Config) error {
	masked := *config
	masked.Token = displayValue(configKeyToken, config.Token)

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)

		return encoder.Encode(masked)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(masked)
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")

		_ = table.Append([]string{"API", valueOrNA(ghclient.NormalizeEndpoint(masked.API))})
		_ = table.Append([]string{"Token", valueOrNA(masked.Token)})
		_ = table.Append([]string{"Output", masked.Output})
		_ = table.Append([]string{"User Agent", valueOrNA(masked.UserAgent)})
		_ = table.Append([]string{"Retry Max", strconv.Itoa(masked.RetryMax)})

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputConfigUpdateResult(w io.Writer, format, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)

		err := encoder.Encode(result)
		if err != nil {
			return fmt.Errorf("failed to encode config result as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		err := yaml.NewEncoder(w).Encode(result)
		if err != nil {
			return fmt.Errorf("failed to encode config result as YAML: %w", err)
		}

		return nil
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")

		_ = table.Append([]string{"Action", action})
		_ = table.Append([]string{"Key", key})

		if value != "" {
			_ = table.Append([]string{"Value", value})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// CreateClient creates an API client from the current configuration.
func CreateClient() (ghapi.Client, error) {
	config := loadConfig()

	return createClientWithToken(config, config.Token)
}

func createClientWithToken(config *Config, token string) (ghapi.Client, error) {
	verbose := viper.GetBool("verbose")

	level := logging.WarnLevel
	if verbose {
		level = logging.DebugLevel
	}

	logger, err := logging.NewZapLoggerFromEnv(level)
	if err != nil {
		return nil, err
	}

	client, err := ghclient.New(&ghapi.Config{
		APIEndpoint: config.API,
		AccessToken: token,
		UserAgent:   config.UserAgent,
		HTTPTimeout: constants.DefaultHTTPTimeout,
		RetryMax:    config.RetryMax,
		Debug:       verbose,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
