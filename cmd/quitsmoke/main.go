// Command quitsmoke runs the quit smoking companion backend.
package main

import (
	"github.com/heartmarshall/quitsmoke-backend/internal/app"
	"github.com/heartmarshall/quitsmoke-backend/internal/cli"
)

func main() {
	cli.Execute(app.BuildVersion())
}
