// Package docs serves the OpenAPI document and a Swagger UI page, both embedded in the binary.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openAPI []byte

// OpenAPI returns the embedded document.
func OpenAPI() []byte { return openAPI }

// PathPrefix is where the UI lives; security headers relax the CSP under it.
const PathPrefix = "/docs"

// Register mounts GET /docs and GET /docs/openapi.yaml.
func Register(r gin.IRoutes) {
	r.GET(PathPrefix+"/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPI)
	})
	r.GET(PathPrefix, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>ConnectVan API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      .topbar { display: none; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.onload = () => {
        const LANG_KEY = 'connectvan_docs_language';
        const lang = localStorage.getItem(LANG_KEY) || 'pt';
        window.ui = SwaggerUIBundle({
          url: '/docs/openapi.yaml',
          dom_id: '#swagger-ui',
          deepLinking: true,
          persistAuthorization: true,
          docExpansion: 'none',
          defaultModelsExpandDepth: -1,
          withCredentials: true,
          requestInterceptor: (req) => {
            req.headers = req.headers || {};
            if (!req.headers['Accept-Language']) req.headers['Accept-Language'] = lang;
            return req;
          }
        });
      };
    </script>
  </body>
</html>`
