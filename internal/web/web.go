package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register mounts the embedded frontend at / and its assets at /static.
func Register(r *gin.Engine) error {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}

	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(assets))
	})
	r.StaticFS("/static", http.FS(assets))

	return nil
}
