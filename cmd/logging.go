package cmd

import (
	"github.com/hydrogencg/go-raycaster/log"
	"github.com/urfave/cli"
)

var logger = log.New("raycaster")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
