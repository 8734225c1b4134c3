package appsync

// Resolve builds the canonical configuration for cfg. Schema and template
// files are read from env's filesystem; any read or merge failure aborts the
// whole resolution and no partial result is returned.
func Resolve(env *Environment, cfg *RawConfig) (*CanonicalConfig, error) {
	fsys := env.fs()

	schema, err := MergeSchemas(fsys, env.ServicePath, cfg.SchemaPaths())
	if err != nil {
		return nil, err
	}

	resolvers := make([]Resolver, 0, len(cfg.MappingTemplates))
	for _, spec := range cfg.MappingTemplates {
		resolvers = append(resolvers, BuildResolver(spec))
	}

	dataSources := BuildDataSources(cfg.DataSources, env)

	functions := make([]FunctionConfiguration, 0, len(cfg.FunctionConfigurations))
	for _, spec := range cfg.FunctionConfigurations {
		functions = append(functions, BuildFunctionConfiguration(spec))
	}

	templates, err := ResolveMappingTemplates(fsys, cfg.MappingTemplatesDir(env.ServicePath), cfg)
	if err != nil {
		return nil, err
	}

	return &CanonicalConfig{
		AppSync:          BuildAppSync(cfg, env.APIKey),
		Schema:           schema,
		Resolvers:        resolvers,
		DataSources:      dataSources,
		Functions:        functions,
		MappingTemplates: templates,
	}, nil
}
