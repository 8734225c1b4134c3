package appsync

// Resolver kinds.
const (
	KindUnit     = "UNIT"
	KindPipeline = "PIPELINE"
)

// Resolver is the canonical resolver shape.
type Resolver struct {
	Kind                            string   `json:"kind" yaml:"kind"`
	FieldName                       string   `json:"fieldName" yaml:"fieldName"`
	TypeName                        string   `json:"typeName" yaml:"typeName"`
	DataSourceName                  string   `json:"dataSourceName,omitempty" yaml:"dataSourceName,omitempty"`
	Functions                       []string `json:"functions,omitempty" yaml:"functions,omitempty"`
	RequestMappingTemplateLocation  string   `json:"requestMappingTemplateLocation" yaml:"requestMappingTemplateLocation"`
	ResponseMappingTemplateLocation string   `json:"responseMappingTemplateLocation" yaml:"responseMappingTemplateLocation"`
}

// FunctionConfiguration is the canonical pipeline function shape.
type FunctionConfiguration struct {
	Name                            string `json:"name" yaml:"name"`
	DataSourceName                  string `json:"dataSourceName" yaml:"dataSourceName"`
	RequestMappingTemplateLocation  string `json:"requestMappingTemplateLocation" yaml:"requestMappingTemplateLocation"`
	ResponseMappingTemplateLocation string `json:"responseMappingTemplateLocation" yaml:"responseMappingTemplateLocation"`
}

// BuildResolver maps a declaration to a Resolver. The template locations are
// always the canonical names, even when request/response override the file.
func BuildResolver(spec ResolverSpec) Resolver {
	kind := spec.Kind
	if kind == "" {
		kind = KindUnit
	}
	prefix := spec.Prefix()
	return Resolver{
		Kind:                            kind,
		FieldName:                       spec.Field,
		TypeName:                        spec.Type,
		DataSourceName:                  spec.DataSource,
		Functions:                       spec.Functions,
		RequestMappingTemplateLocation:  RequestTemplateName(prefix),
		ResponseMappingTemplateLocation: ResponseTemplateName(prefix),
	}
}

// BuildFunctionConfiguration maps a pipeline function declaration.
func BuildFunctionConfiguration(spec FunctionSpec) FunctionConfiguration {
	prefix := spec.Prefix()
	return FunctionConfiguration{
		Name:                            spec.Name,
		DataSourceName:                  spec.DataSource,
		RequestMappingTemplateLocation:  RequestTemplateName(prefix),
		ResponseMappingTemplateLocation: ResponseTemplateName(prefix),
	}
}
