package appsync

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSchemaPath is used when a declaration does not name a schema.
const DefaultSchemaPath = "schema.graphql"

// DefaultMappingTemplatesLocation is the template directory, relative to the
// service path, used when mappingTemplatesLocation is not set.
const DefaultMappingTemplatesLocation = "mapping-templates"

// RawConfig is a user-declared AppSync API as found under custom.appSync.
type RawConfig struct {
	AuthSpec `yaml:",inline"`

	// Name is the API name reported to the simulator.
	Name string `json:"name" yaml:"name"`
	// Schema is one schema path or a list of them; entries may be glob patterns.
	Schema StringList `json:"schema,omitempty" yaml:"schema,omitempty"`
	// MappingTemplatesLocation is the template directory relative to the service path.
	MappingTemplatesLocation string `json:"mappingTemplatesLocation,omitempty" yaml:"mappingTemplatesLocation,omitempty"`
	// Substitutions apply to every mapping template.
	Substitutions Substitutions `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`

	MappingTemplates       FlatList[ResolverSpec]   `json:"mappingTemplates,omitempty" yaml:"mappingTemplates,omitempty"`
	FunctionConfigurations FlatList[FunctionSpec]   `json:"functionConfigurations,omitempty" yaml:"functionConfigurations,omitempty"`
	DataSources            FlatList[DataSourceSpec] `json:"dataSources,omitempty" yaml:"dataSources,omitempty"`

	AdditionalAuthenticationProviders []AuthSpec `json:"additionalAuthenticationProviders,omitempty" yaml:"additionalAuthenticationProviders,omitempty"`
}

// SchemaPaths returns the declared schema paths. An absent schema defaults to
// schema.graphql; an explicitly empty list stays empty so that resolution
// fails with ErrSchemaRequired.
func (c *RawConfig) SchemaPaths() []string {
	if c.Schema == nil {
		return []string{DefaultSchemaPath}
	}
	return c.Schema
}

// MappingTemplatesDir returns the absolute mapping template directory for a service.
func (c *RawConfig) MappingTemplatesDir(servicePath string) string {
	location := c.MappingTemplatesLocation
	if location == "" {
		location = DefaultMappingTemplatesLocation
	}
	return filepath.Join(servicePath, location)
}

// ResolverSpec declares a unit resolver, or a pipeline resolver when Functions is set.
type ResolverSpec struct {
	Type          string        `json:"type" yaml:"type"`
	Field         string        `json:"field" yaml:"field"`
	Name          string        `json:"name,omitempty" yaml:"name,omitempty"`
	DataSource    string        `json:"dataSource,omitempty" yaml:"dataSource,omitempty"`
	Kind          string        `json:"kind,omitempty" yaml:"kind,omitempty"`
	Functions     []string      `json:"functions,omitempty" yaml:"functions,omitempty"`
	Request       string        `json:"request,omitempty" yaml:"request,omitempty"`
	Response      string        `json:"response,omitempty" yaml:"response,omitempty"`
	Substitutions Substitutions `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`
}

// Prefix returns the template prefix of the resolver.
func (r ResolverSpec) Prefix() string {
	return TemplatePrefix(r.Name, r.Type, r.Field)
}

// FunctionSpec declares a pipeline function.
type FunctionSpec struct {
	Name          string        `json:"name" yaml:"name"`
	DataSource    string        `json:"dataSource" yaml:"dataSource"`
	Request       string        `json:"request,omitempty" yaml:"request,omitempty"`
	Response      string        `json:"response,omitempty" yaml:"response,omitempty"`
	Substitutions Substitutions `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`
}

// Prefix returns the template prefix of the pipeline function.
func (f FunctionSpec) Prefix() string {
	return TemplatePrefix(f.Name, "", "")
}

// DataSourceSpec declares a data source. Config fields are interpreted per Type.
type DataSourceSpec struct {
	Name   string           `json:"name" yaml:"name"`
	Type   DataSourceType   `json:"type" yaml:"type"`
	Config DataSourceConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

// dataSourceSpecFields has the fields of DataSourceSpec without its decoders.
type dataSourceSpecFields DataSourceSpec

// UnmarshalYAML decodes a mapping. Any other node, such as a bare string,
// decodes to the zero spec, which BuildDataSource drops.
func (d *DataSourceSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		*d = DataSourceSpec{}
		return nil
	}
	return node.Decode((*dataSourceSpecFields)(d))
}

// UnmarshalJSON decodes an object. Any other value decodes to the zero spec.
func (d *DataSourceSpec) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*d = DataSourceSpec{}
		return nil
	}
	return json.Unmarshal(trimmed, (*dataSourceSpecFields)(d))
}

// DataSourceConfig holds the type-specific settings of a data source.
type DataSourceConfig struct {
	// TableName is used by AMAZON_DYNAMODB.
	TableName string `json:"tableName,omitempty" yaml:"tableName,omitempty"`
	// FunctionName is used by AWS_LAMBDA and must name a service function.
	FunctionName string `json:"functionName,omitempty" yaml:"functionName,omitempty"`
	// Endpoint is used by HTTP and AMAZON_ELASTICSEARCH.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// TemplateFile is a loaded template or schema. Path is the name reported to
// the simulator, Content the text after substitution.
type TemplateFile struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// CanonicalConfig is the fully-resolved configuration handed to the simulator.
type CanonicalConfig struct {
	AppSync          AppSyncConfig           `json:"appSync" yaml:"appSync"`
	Schema           TemplateFile            `json:"schema" yaml:"schema"`
	Resolvers        []Resolver              `json:"resolvers" yaml:"resolvers"`
	DataSources      []DataSource            `json:"dataSources" yaml:"dataSources"`
	Functions        []FunctionConfiguration `json:"functions" yaml:"functions"`
	MappingTemplates []TemplateFile          `json:"mappingTemplates" yaml:"mappingTemplates"`
}

// DataSource returns the resolved data source with the given name.
func (c *CanonicalConfig) DataSource(name string) (DataSource, bool) {
	for _, ds := range c.DataSources {
		if ds.DataSourceName() == name {
			return ds, true
		}
	}
	return nil, false
}
