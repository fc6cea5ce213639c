package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/services/gateway"
	"github.com/drukschool/bulletin/services/logger"
	"github.com/drukschool/bulletin/ui"
)

func main() {
	std := log.New(os.Stderr, "CLI : ", log.LstdFlags)

	var logSvc core.Logger
	if core.Conf.GetBool("debug") {
		logSvc = logsvc.NewConsoleLogger(std)
	} else {
		logSvc = logsvc.NewRollbarLogger(std)
	}

	in := bufio.NewScanner(os.Stdin)
	gw := gateway.NewClient(core.Conf.GetString("apiBaseURL"), logSvc)
	ctrl := ui.NewController(gw, logSvc, &confirmer{in: in, out: os.Stdout})

	cli := &commandLine{
		ctrl: ctrl,
		in:   in,
		out:  os.Stdout,
	}
	if err := cli.run(context.Background()); err != nil {
		std.Fatal(err)
	}
}
