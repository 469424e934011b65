package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer builds a file-backed enforcer from a model and a CSV policy.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
