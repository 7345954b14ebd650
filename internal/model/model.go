package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller identity through the request.
// Authentication itself happens upstream; the scope is trusted input here.
type Scope struct {
	UserID string
}

// Plan is the subscription tier of a user.
type Plan string

const (
	PlanFree      Plan = "free"
	PlanPro       Plan = "pro"
	PlanUnlimited Plan = "unlimited"
)

// ParsePlan maps a stored plan name onto a known Plan, defaulting to free.
func ParsePlan(name string) Plan {
	switch Plan(name) {
	case PlanPro:
		return PlanPro
	case PlanUnlimited:
		return PlanUnlimited
	default:
		return PlanFree
	}
}
