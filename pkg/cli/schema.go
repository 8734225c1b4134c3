package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
	"github.com/getmockd/mockd-appsync/pkg/cli/internal/output"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the merged GraphQL schema",
	Long: `Read every schema file named by custom.appSync.schema (glob patterns allowed)
and print the merged SDL. A single schema file is printed unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		schema, err := appsync.MergeSchemas(p.env.Fs, p.env.ServicePath, p.cfg.Custom.AppSync.SchemaPaths())
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), schema)
		}
		content := schema.Content
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
