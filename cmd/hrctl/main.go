// Command hrctl runs employee and salary audit operations directly against the
// configured database.
package main

import (
	"context"
	"fmt"
	"os"

	"hris-audit/internal/app"
	"hris-audit/internal/config"
	"hris-audit/internal/employee"
	"hris-audit/internal/salaryaudit"
	"hris-audit/internal/shared/contextutil"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	employeeSvc employee.Service
	auditSvc    salaryaudit.Service

	flagVerbose bool
	flagActor   string
)

func main() {
	var infra *app.Infra

	rootCmd := newRootCmd()
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if flagVerbose {
			if logger, err = zap.NewDevelopment(); err != nil {
				return err
			}
		}
		zap.ReplaceGlobals(logger)

		infra, err = app.OpenInfra(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		services := app.BuildServices(cfg, infra.SQLDB, infra.GormDB, infra.Redis, logger)
		employeeSvc = services.Employee
		auditSvc = services.Audit
		return nil
	}

	ctx := contextutil.WithRequestID(context.Background(), "hrctl")
	err := rootCmd.ExecuteContext(ctx)
	if infra != nil {
		infra.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hrctl",
		Short:        "Employee salary store with audit trail",
		SilenceUsage: true,
		// Errors are printed by main.
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr")
	root.PersistentFlags().StringVar(&flagActor, "actor", os.Getenv("USER"), "Who is making the change")

	root.AddCommand(newEmployeeCmd())
	root.AddCommand(newAuditCmd())
	return root
}

// commandContext tags the command context with the acting user.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flagActor != "" {
		ctx = contextutil.WithActor(ctx, flagActor)
	}
	return ctx
}
