package appsync

import (
	"context"

	"github.com/spf13/afero"
)

// Log colours understood by Logger implementations.
const (
	ColorOrange = "orange"
	ColorRed    = "red"
	ColorGreen  = "green"
)

// LogOptions carries presentation hints for a log line.
type LogOptions struct {
	Color string
}

// Logger receives user-facing messages, such as warnings about data sources
// that were dropped. Implementations must not block.
type Logger interface {
	Log(message string, opts LogOptions)
}

// Invoker runs a service function locally and returns its parsed output.
type Invoker interface {
	Invoke(ctx context.Context, functionName string, event any) (any, error)
}

// DynamoDBOptions are the connection parameters of the local DynamoDB.
type DynamoDBOptions struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
}

// FunctionDefinition is an entry of the service's function registry.
type FunctionDefinition struct {
	Handler     string            `json:"handler,omitempty" yaml:"handler,omitempty"`
	Runtime     string            `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Timeout     int               `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Environment map[string]string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Environment is everything Resolve needs from the hosting service.
type Environment struct {
	// ServicePath is the service root; schema and template paths are relative to it.
	ServicePath string
	// APIKey is reported in the appSync block.
	APIKey string
	// DynamoDB is merged into every AMAZON_DYNAMODB data source.
	DynamoDB DynamoDBOptions
	// Functions is the registry Lambda data sources are checked against.
	Functions map[string]FunctionDefinition
	// Invoker backs the invoke capability of Lambda data sources.
	Invoker Invoker
	// Logger receives warnings. Nil discards them.
	Logger Logger
	// Fs is the filesystem templates and schemas are read from. Nil means the OS filesystem.
	Fs afero.Fs
}

func (e *Environment) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func (e *Environment) log(message, color string) {
	if e.Logger == nil {
		return
	}
	e.Logger.Log(message, LogOptions{Color: color})
}
