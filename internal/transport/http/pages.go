package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>HR Dashboard API</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#667eea,#764ba2); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { flex: 1; padding: 60px 20px; text-align: center; }
code { background: rgba(255,255,255,0.15); padding: 2px 8px; border-radius: 4px; }
a { color: #fff; }
ul { list-style: none; padding: 0; line-height: 2; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>HR Dashboard API</h1>
  <p>Employee, department and role records behind a role-gated JSON API.</p>
  <ul>
    <li><code>POST /api/v1/auth/login</code> — obtain a bearer token</li>
    <li><code>GET /api/v1/employees</code> — list employee records</li>
    <li><code>GET /api/v1/stats</code> — dashboard aggregates</li>
    <li><a href="/swagger/index.html">API documentation</a></li>
  </ul>
</header>
<footer>HR Dashboard</footer>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
