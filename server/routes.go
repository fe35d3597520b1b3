package server

func (s *Server) initRoutes() {
	// LOGIN / SESSION
	s.RegisterRouteFunc("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAuthSession, ChainMiddleware(s.SessionHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAuthSignout, ChainMiddleware(s.SignoutHandler(), s.APIMiddleware()...))

	// Admin routes (require a restored session)
	s.RegisterRouteFunc("GET "+RouteAdminNavigation, ChainMiddleware(s.NavigationHandler(), append(s.APIMiddleware(), s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteAdminTab, ChainMiddleware(s.TabHandler(), append(s.APIMiddleware(), s.RequireSession())...))

	// Browser preflight requests carry no session and match no method-specific
	// pattern, so they get their own catch-all.
	s.RegisterRouteFunc("OPTIONS /", ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	// Public legal pages
	s.RegisterRouteFunc("GET "+RoutePrivacyPolicy, ChainMiddleware(s.PrivacyPolicyHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteDeleteData, ChainMiddleware(s.DeleteDataHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteSafetyStandards, ChainMiddleware(s.SafetyStandardsHandler(), s.HTMLMiddleware()...))
}
