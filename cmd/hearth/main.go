// Command hearth runs the hearth API and its maintenance tasks.
//
// @title                       hearth API
// @version                     1.0
// @description                 Accounts, direct messages, personal todos and a public quote board.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
