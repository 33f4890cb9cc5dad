package environment

import "context"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production.
// Aliases are resolved by FromEnv, so only the canonical values match.
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}

// IsStaging checks if the environment from context is staging
func IsStaging(ctx context.Context) bool {
	return FromContext(ctx) == Staging
}
