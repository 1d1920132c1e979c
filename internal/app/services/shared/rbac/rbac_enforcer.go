package rbac

import (
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.act == "*" || r.act == p.act) && keyMatch2(r.obj, p.obj)
`

type enforcer struct {
	enforcer *casbin.Enforcer
}

// NewEnforcer builds the gateway policy. basePath is the mounted API prefix,
// e.g. /api/v1.
func NewEnforcer(basePath string) (contracts.Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(Policies(basePath)); err != nil {
		return nil, err
	}
	return &enforcer{enforcer: e}, nil
}

func (e *enforcer) Authorize(role, path, method string) (bool, error) {
	return e.enforcer.Enforce(role, method, path)
}

// Policies lists role, method, path rules for the gateway routes.
func Policies(basePath string) [][]string {
	labStaff := [][]string{
		{constvars.MethodGet, "/samples"},
		{constvars.MethodPost, "/samples/:booking_id/:action"},
		{constvars.MethodGet, "/samples/:booking_id/report-form"},
		{constvars.MethodPut, "/samples/:booking_id/report"},
		{constvars.MethodPost, "/bookings"},
		{constvars.MethodPost, "/bookings/integrated"},
		{constvars.MethodGet, "/reports/:report_id"},
		{constvars.MethodGet, "/reports/:report_id/download"},
		{constvars.MethodPost, "/reports/:report_id/notify"},
	}
	doctor := [][]string{
		{constvars.MethodGet, "/samples"},
		{constvars.MethodPost, "/bookings"},
		{constvars.MethodGet, "/reports/:report_id"},
		{constvars.MethodGet, "/reports/:report_id/download"},
	}
	patient := [][]string{
		{constvars.MethodGet, "/reports/:report_id"},
		{constvars.MethodGet, "/reports/:report_id/download"},
	}

	policies := [][]string{
		{constvars.RoleAdmin, "*", basePath + "/*"},
	}
	for _, rule := range labStaff {
		policies = append(policies, []string{constvars.RoleLabTechnician, rule[0], basePath + rule[1]})
	}
	for _, rule := range doctor {
		policies = append(policies, []string{constvars.RoleDoctor, rule[0], basePath + rule[1]})
	}
	for _, rule := range patient {
		policies = append(policies, []string{constvars.RolePatient, rule[0], basePath + rule[1]})
	}
	return policies
}
