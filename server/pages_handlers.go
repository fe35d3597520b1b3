package server

import (
	"fmt"
	"net/http"
)

// The legal pages are public and static; app stores link to them directly.

const legalPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s - Qiimeet</title>
</head>
<body>
	<main>
		<h1>%s</h1>
		%s
	</main>
</body>
</html>
`

func (s *Server) legalPageHandler(title, body string) http.HandlerFunc {
	page := fmt.Sprintf(legalPageTemplate, title, title, body)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}
}

func (s *Server) PrivacyPolicyHandler() http.HandlerFunc {
	return s.legalPageHandler("Privacy Policy",
		`<p>This policy describes how Qiimeet collects, uses and protects the
information of people using the service.</p>`)
}

func (s *Server) DeleteDataHandler() http.HandlerFunc {
	return s.legalPageHandler("Delete Your Data",
		`<p>To request deletion of your Qiimeet account and associated data,
sign in to the app and open Settings &gt; Account &gt; Delete Account, or
contact support from your registered email address.</p>`)
}

func (s *Server) SafetyStandardsHandler() http.HandlerFunc {
	return s.legalPageHandler("Safety Standards",
		`<p>Qiimeet enforces community safety standards. Report abusive
behavior from any profile; reports are reviewed by our moderation team.</p>`)
}
