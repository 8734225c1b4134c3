package config

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
	"github.com/getmockd/mockd-appsync/pkg/invoke"
)

// Environment builds the resolution environment for the project. Functions
// are invoked through the framework command configured in the simulator
// options, run from the service path; opts configure the invocation bridge.
func (c *ProjectConfig) Environment(logger appsync.Logger, slogger *slog.Logger, opts ...invoke.BridgeOption) *appsync.Environment {
	servicePath := c.ServicePath()

	known := make(map[string]bool, len(c.Functions))
	for name := range c.Functions {
		known[name] = true
	}
	manager := invoke.NewCommandManager(c.Custom.Simulator.InvokeCommand, servicePath)
	manager.Functions = known

	return &appsync.Environment{
		ServicePath: servicePath,
		APIKey:      c.Custom.Simulator.APIKey,
		DynamoDB:    c.Custom.Simulator.DynamoDB,
		Functions:   c.Functions,
		Invoker:     invoke.NewBridge(manager, slogger, opts...),
		Logger:      logger,
		Fs:          afero.NewOsFs(),
	}
}
