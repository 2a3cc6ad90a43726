package tags

// Standard tag keys.
const (
	// KeyManagedBy identifies the tool that created a resource.
	KeyManagedBy = "managed-by"

	// KeyDeployment names the virtual machine a resource was created for.
	KeyDeployment = "deployment"
)

// ManagedByAzprov is the value of KeyManagedBy on every created resource.
const ManagedByAzprov = "azprov"

// TagBuilder provides a fluent interface for building resource tags.
// The standard keys are set by NewTagBuilder and cannot be overridden.
type TagBuilder struct {
	tags map[string]string
}

// NewTagBuilder creates a builder with the standard tags for deployment.
// An empty deployment leaves the deployment tag out.
func NewTagBuilder(deployment string) *TagBuilder {
	tb := &TagBuilder{
		tags: map[string]string{
			KeyManagedBy: ManagedByAzprov,
		},
	}
	if deployment != "" {
		tb.tags[KeyDeployment] = deployment
	}
	return tb
}

// Merge adds extra tags. Standard keys in extra are ignored.
func (tb *TagBuilder) Merge(extra map[string]string) *TagBuilder {
	for k, v := range extra {
		if IsReserved(k) {
			continue
		}
		tb.tags[k] = v
	}
	return tb
}

// Build returns a copy of the tags map.
func (tb *TagBuilder) Build() map[string]string {
	result := make(map[string]string, len(tb.tags))
	for k, v := range tb.tags {
		result[k] = v
	}
	return result
}

// IsReserved reports whether key is set by azprov itself.
func IsReserved(key string) bool {
	return key == KeyManagedBy || key == KeyDeployment
}
