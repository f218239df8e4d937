package routes

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mattia9203/RunApp-Server/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f6f7f4;
      --text: #132019;
      --muted: #536258;
      --accent: #1f6f4a;
      --border: #d8ddd6;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: Georgia, "Times New Roman", serif;
      color: var(--text);
      background: linear-gradient(180deg, #fcfcfa 0%, var(--bg) 100%);
    }
    main { max-width: 880px; margin: 0 auto; padding: 48px 20px 64px; }
    h1 { margin: 0 0 8px; }
    p.lead { color: var(--muted); margin: 0 0 32px; }
    table { width: 100%; border-collapse: collapse; background: #fff; border: 1px solid var(--border); border-radius: 12px; }
    th, td { text-align: left; padding: 10px 14px; border-bottom: 1px solid var(--border); font-size: 0.95rem; }
    th { text-transform: uppercase; letter-spacing: 0.08em; font-size: 0.78rem; color: var(--muted); }
    code { color: var(--accent); }
    footer { margin-top: 24px; color: var(--muted); font-size: 0.85rem; }
  </style>
</head>
<body>
  <main>
    <h1>{{ .Title }}</h1>
    <p class="lead">JSON endpoints used by the RunApp mobile client. This page is served only in development.</p>
    <table>
      <tr><th>Method</th><th>Path</th><th>Required</th><th>Success</th></tr>
      {{ range .Endpoints }}
      <tr><td>{{ .Method }}</td><td><code>{{ .Path }}</code></td><td>{{ .Required }}</td><td>{{ .Success }}</td></tr>
      {{ end }}
    </table>
    <footer>Rendered {{ .LoadedAt }}</footer>
  </main>
</body>
</html>
`

type docsEndpoint struct {
	Method   string
	Path     string
	Required string
	Success  string
}

type docsPageData struct {
	Title     string
	LoadedAt  string
	Endpoints []docsEndpoint
}

var docsEndpoints = []docsEndpoint{
	{"GET", "/", "-", "200 status banner"},
	{"POST", "/create_user", "body: uid", "201 status success"},
	{"GET", "/get_user", "query: uid", "200 name, weight, height"},
	{"POST", "/create_run", "body: uid", "201 status success"},
	{"GET", "/get_runs", "query: uid", "200 run array, newest first"},
	{"DELETE", "/delete_run", "query: run_id", "200 status success"},
	{"POST", "/set_weekly_goal", "body: uid, week_start_date", "200 status success"},
	{"GET", "/get_weekly_goal", "query: uid, week_start_date", "200 target_km, target_calories"},
}

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	pageData := docsPageData{
		Title:     "RunApp-Server API Docs",
		LoadedAt:  time.Now().UTC().Format(time.RFC3339),
		Endpoints: docsEndpoints,
	}

	indexHandler := func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")
		c.Set("X-Robots-Tag", "noindex, nofollow")

		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, pageData); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}

		return c.Status(fiber.StatusOK).Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)

	return nil
}
