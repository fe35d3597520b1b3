package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login, Session Restore & Signout
	RouteAuthLogin   = "/auth/login"
	RouteAuthSession = "/auth/session"
	RouteAuthSignout = "/auth/signout"

	// Admin Routes
	RouteAdminNavigation = "/admin/navigation"
	RouteAdminTab        = "/admin/tabs/{tab}"

	// Public Routes - no authentication required
	RoutePrivacyPolicy   = "/privacy-policy"
	RouteDeleteData      = "/delete-data"
	RouteSafetyStandards = "/safety-standards"
)
