package main

import (
	"fmt"
	"strconv"

	"hris-audit/internal/employee"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees and salaries",
	}
	cmd.AddCommand(employeeCreateCmd())
	cmd.AddCommand(employeeGetCmd())
	cmd.AddCommand(employeeListCmd())
	cmd.AddCommand(employeeCountCmd())
	cmd.AddCommand(employeeSetSalaryCmd())
	cmd.AddCommand(employeeRaiseCmd())
	return cmd
}

func parseEmployeeID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return id, nil
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q", name, s)
	}
	return d, nil
}

func employeeCreateCmd() *cobra.Command {
	var department string
	cmd := &cobra.Command{
		Use:   "create <name> <salary>",
		Short: "Insert an employee",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := parseAmount("salary", args[1])
			if err != nil {
				return err
			}
			resp, err := employeeSvc.Create(commandContext(cmd), employee.CreateEmployeeRequest{
				Name:       args[0],
				Salary:     &salary,
				Department: department,
			})
			if err != nil {
				return err
			}
			return output(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&department, "department", "", "Department label")
	return cmd
}

func employeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an employee by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			resp, err := employeeSvc.GetByID(commandContext(cmd), id)
			if err != nil {
				return err
			}
			return output(cmd, resp)
		},
	}
}

func employeeListCmd() *cobra.Command {
	var department, minSalary string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees of a department, or those earning at least --min-salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			switch {
			case department != "" && minSalary != "":
				return fmt.Errorf("--department and --min-salary are mutually exclusive")
			case department != "":
				resp, err := employeeSvc.ListByDepartment(ctx, department)
				if err != nil {
					return err
				}
				return output(cmd, resp)
			case minSalary != "":
				threshold, err := parseAmount("min-salary", minSalary)
				if err != nil {
					return err
				}
				resp, err := employeeSvc.ListAboveSalary(ctx, threshold)
				if err != nil {
					return err
				}
				return output(cmd, resp)
			default:
				return fmt.Errorf("one of --department or --min-salary is required")
			}
		},
	}
	cmd.Flags().StringVar(&department, "department", "", "Department label")
	cmd.Flags().StringVar(&minSalary, "min-salary", "", "Inclusive salary threshold")
	return cmd
}

func employeeCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <department>",
		Short: "Count employees in a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := employeeSvc.CountByDepartment(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return output(cmd, employee.DepartmentCountResponse{Department: args[0], Count: count})
		},
	}
}

func employeeSetSalaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-salary <id> <salary>",
		Short: "Replace a salary; changes are written to the audit log",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			salary, err := parseAmount("salary", args[1])
			if err != nil {
				return err
			}
			resp, err := employeeSvc.SetSalary(commandContext(cmd), id, employee.SetSalaryRequest{Salary: &salary})
			if err != nil {
				return err
			}
			return output(cmd, resp)
		},
	}
}

func employeeRaiseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raise <id> <percent>",
		Short: "Raise (or cut, with a negative percent) a salary",
		Long:  "Raise a salary by a percentage of its current value. Put -- before a negative percent: hrctl employee raise 7 -- -5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			percent, err := parseAmount("percent", args[1])
			if err != nil {
				return err
			}
			resp, err := employeeSvc.RaiseSalary(commandContext(cmd), id, employee.RaiseSalaryRequest{Percent: &percent})
			if err != nil {
				return err
			}
			return output(cmd, resp)
		},
	}
}
