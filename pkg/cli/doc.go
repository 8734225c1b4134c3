// Package cli provides the command-line interface for mockd-appsync.
//
// Commands:
//   - resolve: Resolve the project's AppSync configuration and print it as JSON or YAML
//   - schema: Print the merged GraphQL schema
//   - invoke: Call the function behind a Lambda data source with a JSON payload
//   - version: Show version information
//
// Every command reads a serverless-style project file (serverless.yml,
// serverless.yaml or serverless.json in the working directory unless --config
// is given). Simulator messages are printed to stderr with an
// "AppSync Simulator: " prefix; diagnostic logging is controlled with
// --log-level, --log-format and --log-file.
package cli
