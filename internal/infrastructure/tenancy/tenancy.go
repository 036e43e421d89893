package tenancy

import (
	"context"
	"os"
	"strings"
)

// Each tenant owns an isolated set of DynamoDB tables distinguished by a
// name prefix. The HTTP layer resolves the tenant from the X-Tenant-ID
// header and stores it on the request context; repositories read it back
// when they build table names. The validation engine itself never touches
// the tenant.

type contextKey struct{}

// Allowed returns the configured tenant ids (TENANTS env, comma separated).
// An empty configuration disables tenant isolation.
func Allowed() []string {
	raw := strings.TrimSpace(os.Getenv("TENANTS"))
	if raw == "" {
		return nil
	}
	var tenants []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tenants = append(tenants, t)
		}
	}
	return tenants
}

// Resolve reports whether the tenant id is configured.
func Resolve(id string) bool {
	for _, t := range Allowed() {
		if t == id {
			return true
		}
	}
	return false
}

func WithTenant(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// TableName prefixes a base table name with the request's tenant, if any.
func TableName(ctx context.Context, base string) string {
	if tenant, ok := FromContext(ctx); ok {
		return tenant + "_" + base
	}
	return base
}
