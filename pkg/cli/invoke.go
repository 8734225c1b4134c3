package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
	"github.com/getmockd/mockd-appsync/pkg/cli/internal/output"
)

// ErrNotLambda is returned when invoke targets a data source that is not AWS_LAMBDA.
var ErrNotLambda = errors.New("data source is not an AWS_LAMBDA data source")

var (
	invokePayload string
	invokeTimeout time.Duration
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <dataSource>",
	Short: "Invoke the function behind a Lambda data source",
	Long: `Resolve the project, look up the named AWS_LAMBDA data source and run its function
locally with the given JSON payload as the event. The function's output is printed as
JSON when it parses, otherwise as text.

Examples:
  mockd-appsync invoke authorsLambda --payload '{"arguments":{"id":"1"}}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload any
		if err := json.Unmarshal([]byte(invokePayload), &payload); err != nil {
			return fmt.Errorf("invalid --payload: %w", err)
		}

		p, err := loadProject(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		resolved, err := resolveProject(p)
		if err != nil {
			return err
		}

		ds, ok := resolved.DataSource(args[0])
		if !ok {
			return fmt.Errorf("data source %q not found", args[0])
		}
		lambda, ok := ds.(*appsync.LambdaDataSource)
		if !ok {
			return fmt.Errorf("%s (%s): %w", ds.DataSourceName(), ds.DataSourceType(), ErrNotLambda)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if invokeTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, invokeTimeout)
			defer cancel()
		}

		result, err := lambda.Invoke(ctx, payload)
		if err != nil {
			return err
		}

		if result == "" {
			output.Warn(cmd.ErrOrStderr(), "function %s printed no output", lambda.FunctionName)
		}
		if text, isText := result.(string); isText && !jsonOutput {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		}
		return output.JSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	invokeCmd.Flags().StringVarP(&invokePayload, "payload", "p", "{}", "JSON event passed to the function")
	invokeCmd.Flags().DurationVar(&invokeTimeout, "timeout", 0, "Abort the invocation after this long (0 means no limit)")
	rootCmd.AddCommand(invokeCmd)
}
