// Package appsync resolves a serverless-style AppSync API declaration into the
// canonical configuration consumed by the local AppSync simulator.
//
// The declaration (RawConfig) is loosely structured: list fields may nest
// arbitrarily, the schema may be one path or several, and mapping templates
// are named by convention rather than listed. Resolve flattens the lists,
// loads and merges the schema documents, loads every request/response
// mapping template with its substitutions applied, and builds the resolver,
// pipeline function, data source and authentication descriptors.
//
// # Template naming
//
// A resolver or pipeline function is identified by a prefix: its name when it
// has one, otherwise "<type>.<field>". Its templates are read from
// "<prefix>.request.vtl" and "<prefix>.response.vtl" under the mapping
// template directory unless request/response override the file name. The
// simulator always sees the canonical names.
//
// # Failure modes
//
// Missing template or schema files and schema merge conflicts abort the whole
// resolution. A data source without a name or type is dropped silently. A
// Lambda data source without a function name, or pointing at an unknown
// function, is dropped and reported through the Environment's Logger.
//
// # Usage
//
//	env := &appsync.Environment{
//	    ServicePath: "/srv/my-api",
//	    APIKey:      "0123456789",
//	    Functions:   map[string]appsync.FunctionDefinition{"resolveUser": {Handler: "handler.user"}},
//	    Invoker:     bridge,
//	    Logger:      logging.NewPluginLogger(os.Stderr, nil),
//	}
//	canonical, err := appsync.Resolve(env, raw)
package appsync
