package config

import (
	"github.com/getmockd/mockd-appsync/pkg/appsync"
)

// Simulator defaults.
const (
	DefaultAPIKey          = "0123456789"
	DefaultDynamoEndpoint  = "http://localhost:8000"
	DefaultDynamoRegion    = "localhost"
	DefaultAccessKeyID     = "DEFAULT_ACCESS_KEY"
	DefaultSecretAccessKey = "DEFAULT_SECRET"
)

// ProjectConfig is a parsed project file.
type ProjectConfig struct {
	Service   string                                `json:"service" yaml:"service"`
	Functions map[string]appsync.FunctionDefinition `json:"functions,omitempty" yaml:"functions,omitempty"`
	Custom    CustomConfig                          `json:"custom" yaml:"custom"`

	// Path is the file the config was loaded from; empty when parsed from bytes.
	Path string `json:"-" yaml:"-"`
}

// CustomConfig is the custom section of the project file.
type CustomConfig struct {
	AppSync   *appsync.RawConfig `json:"appSync,omitempty" yaml:"appSync,omitempty"`
	Simulator SimulatorConfig    `json:"appsync-simulator" yaml:"appsync-simulator"`
}

// SimulatorConfig holds the simulator's own options.
type SimulatorConfig struct {
	// APIKey is reported as the API's key.
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	// DynamoDB is the local DynamoDB every AMAZON_DYNAMODB data source talks to.
	DynamoDB appsync.DynamoDBOptions `json:"dynamoDb" yaml:"dynamoDb"`
	// InvokeCommand is the framework executable used to run functions locally.
	InvokeCommand []string `json:"invokeCommand,omitempty" yaml:"invokeCommand,omitempty"`
	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

// ApplyDefaults fills unset simulator options.
func (s *SimulatorConfig) ApplyDefaults() {
	if s.APIKey == "" {
		s.APIKey = DefaultAPIKey
	}
	if s.DynamoDB.Endpoint == "" {
		s.DynamoDB.Endpoint = DefaultDynamoEndpoint
	}
	if s.DynamoDB.Region == "" {
		s.DynamoDB.Region = DefaultDynamoRegion
	}
	if s.DynamoDB.AccessKeyID == "" {
		s.DynamoDB.AccessKeyID = DefaultAccessKeyID
	}
	if s.DynamoDB.SecretAccessKey == "" {
		s.DynamoDB.SecretAccessKey = DefaultSecretAccessKey
	}
	if len(s.InvokeCommand) == 0 {
		s.InvokeCommand = []string{"serverless"}
	}
}
