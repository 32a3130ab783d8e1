// Package web holds the embedded browser frontend.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// IndexTemplate ginのHTMLテンプレートとして読み込むパス（静的配信の対象外）
const IndexTemplate = "templates/index.html"

//go:embed static templates
var Files embed.FS

// FS static配下の埋め込みファイルだけをhttp.FileSystemとして返す
func FS() http.FileSystem {
	sub, err := fs.Sub(Files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
