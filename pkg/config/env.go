package config

import (
	"os"
	"strings"
)

// Environment variable names
const (
	EnvAPIKey         = "APPSYNC_SIMULATOR_API_KEY"
	EnvDynamoEndpoint = "APPSYNC_SIMULATOR_DYNAMODB_ENDPOINT"
	EnvDynamoRegion   = "APPSYNC_SIMULATOR_DYNAMODB_REGION"
	EnvInvokeCommand  = "APPSYNC_SIMULATOR_INVOKE_COMMAND"
	EnvLogLevel       = "APPSYNC_SIMULATOR_LOG_LEVEL"
)

// ApplyEnvOverrides sets simulator options from the environment. Only
// variables that are present and non-empty take effect.
func ApplyEnvOverrides(s *SimulatorConfig) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv(EnvDynamoEndpoint); v != "" {
		s.DynamoDB.Endpoint = v
	}
	if v := os.Getenv(EnvDynamoRegion); v != "" {
		s.DynamoDB.Region = v
	}
	if v := os.Getenv(EnvInvokeCommand); v != "" {
		s.InvokeCommand = strings.Fields(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
}
