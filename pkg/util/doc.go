// Package util provides shared helpers used across mockd-appsync packages.
//
//   - TruncateBody caps function output and payloads for safe logging
package util
