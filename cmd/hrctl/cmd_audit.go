package main

import (
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the salary audit log",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <employee-id>",
		Short: "List salary changes of an employee, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			entries, err := auditSvc.ListByEmployee(commandContext(cmd), id)
			if err != nil {
				return err
			}
			return output(cmd, entries)
		},
	})
	return cmd
}
