package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Identity types of directory users
	IdentityTypeCC = "CC" // course consultant
	IdentityTypeSS = "SS" // study supervisor
	IdentityTypeLP = "LP" // learning partner

	// RoleScopeAll is the sentinel meaning "no role-scope filter".
	RoleScopeAll = "ALL"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	// Database table names
	TableDirectoryUsers  = "directory_users"
	TableActivityRecords = "activity_records"
	TableMonthlyGoals    = "monthly_goals"
	TableAdminMetrics    = "admin_metrics"

	// PlaceholderDisplayName is attached to ranked entries whose owner
	// has no directory entry. Enrichment never fails a request.
	PlaceholderDisplayName = "Unknown User"
)
