package appsync

import (
	"context"
	"errors"
	"fmt"
)

// DataSourceType is the declared kind of a data source.
type DataSourceType string

// Known data source types. Anything else is passed through as a GenericDataSource.
const (
	DataSourceDynamoDB      DataSourceType = "AMAZON_DYNAMODB"
	DataSourceLambda        DataSourceType = "AWS_LAMBDA"
	DataSourceElasticsearch DataSourceType = "AMAZON_ELASTICSEARCH"
	DataSourceHTTP          DataSourceType = "HTTP"
	DataSourceNone          DataSourceType = "NONE"
)

// ErrNoInvoker is returned when a Lambda data source is invoked without an Invoker.
var ErrNoInvoker = errors.New("no function invoker configured")

// DataSource is a resolved data source. The concrete type is one of
// *DynamoDBDataSource, *LambdaDataSource, *EndpointDataSource or
// *GenericDataSource.
type DataSource interface {
	DataSourceName() string
	DataSourceType() DataSourceType
	isDataSource()
}

// DynamoDBConfig is the connection block of a DynamoDB data source.
type DynamoDBConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	TableName       string `json:"tableName" yaml:"tableName"`
}

// DynamoDBDataSource is an AMAZON_DYNAMODB data source.
type DynamoDBDataSource struct {
	Name   string         `json:"name" yaml:"name"`
	Type   DataSourceType `json:"type" yaml:"type"`
	Config DynamoDBConfig `json:"config" yaml:"config"`
}

// LambdaDataSource is an AWS_LAMBDA data source bound to a service function.
type LambdaDataSource struct {
	Name         string         `json:"name" yaml:"name"`
	Type         DataSourceType `json:"type" yaml:"type"`
	FunctionName string         `json:"functionName" yaml:"functionName"`

	invoker Invoker
}

// Invoke runs the bound function with payload as its event.
func (d *LambdaDataSource) Invoke(ctx context.Context, payload any) (any, error) {
	if d.invoker == nil {
		return nil, fmt.Errorf("%s: %w", d.Name, ErrNoInvoker)
	}
	return d.invoker.Invoke(ctx, d.FunctionName, payload)
}

// EndpointDataSource is an HTTP or AMAZON_ELASTICSEARCH data source.
type EndpointDataSource struct {
	Name     string         `json:"name" yaml:"name"`
	Type     DataSourceType `json:"type" yaml:"type"`
	Endpoint string         `json:"endpoint" yaml:"endpoint"`
}

// GenericDataSource is any other data source type, passed through as declared.
type GenericDataSource struct {
	Name string         `json:"name" yaml:"name"`
	Type DataSourceType `json:"type" yaml:"type"`
}

func (d *DynamoDBDataSource) DataSourceName() string         { return d.Name }
func (d *DynamoDBDataSource) DataSourceType() DataSourceType { return d.Type }
func (d *DynamoDBDataSource) isDataSource()                  {}

func (d *LambdaDataSource) DataSourceName() string         { return d.Name }
func (d *LambdaDataSource) DataSourceType() DataSourceType { return d.Type }
func (d *LambdaDataSource) isDataSource()                  {}

func (d *EndpointDataSource) DataSourceName() string         { return d.Name }
func (d *EndpointDataSource) DataSourceType() DataSourceType { return d.Type }
func (d *EndpointDataSource) isDataSource()                  {}

func (d *GenericDataSource) DataSourceName() string         { return d.Name }
func (d *GenericDataSource) DataSourceType() DataSourceType { return d.Type }
func (d *GenericDataSource) isDataSource()                  {}

// BuildDataSource resolves a declared data source. It reports false when the
// declaration is dropped: with a warning through env's Logger when a Lambda
// declaration lacks a usable function, silently when name or type is missing.
// A Lambda declaration without a function name is always warned about, named
// or not.
func BuildDataSource(spec DataSourceSpec, env *Environment) (DataSource, bool) {
	if spec.Type == DataSourceLambda && spec.Config.FunctionName == "" {
		name := spec.Name
		if name == "" {
			name = "data source"
		}
		env.log(fmt.Sprintf("%s does not have a functionName", name), ColorOrange)
		return nil, false
	}
	if spec.Name == "" || spec.Type == "" {
		return nil, false
	}

	switch spec.Type {
	case DataSourceDynamoDB:
		return &DynamoDBDataSource{
			Name: spec.Name,
			Type: spec.Type,
			Config: DynamoDBConfig{
				Endpoint:        env.DynamoDB.Endpoint,
				Region:          env.DynamoDB.Region,
				AccessKeyID:     env.DynamoDB.AccessKeyID,
				SecretAccessKey: env.DynamoDB.SecretAccessKey,
				TableName:       spec.Config.TableName,
			},
		}, true

	case DataSourceLambda:
		functionName := spec.Config.FunctionName
		if _, ok := env.Functions[functionName]; !ok {
			env.log(fmt.Sprintf("The %s function is not defined", functionName), ColorOrange)
			return nil, false
		}
		return &LambdaDataSource{
			Name:         spec.Name,
			Type:         spec.Type,
			FunctionName: functionName,
			invoker:      env.Invoker,
		}, true

	case DataSourceElasticsearch, DataSourceHTTP:
		return &EndpointDataSource{
			Name:     spec.Name,
			Type:     spec.Type,
			Endpoint: spec.Config.Endpoint,
		}, true

	default:
		return &GenericDataSource{Name: spec.Name, Type: spec.Type}, true
	}
}

// BuildDataSources resolves every declaration in order, leaving out the dropped ones.
func BuildDataSources(specs []DataSourceSpec, env *Environment) []DataSource {
	sources := make([]DataSource, 0, len(specs))
	for _, spec := range specs {
		if ds, ok := BuildDataSource(spec, env); ok {
			sources = append(sources, ds)
		}
	}
	return sources
}
