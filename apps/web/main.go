package main

import (
	"context"
	"log"
	"os"

	"github.com/drukschool/bulletin/core"
	"github.com/drukschool/bulletin/services/gateway"
	"github.com/drukschool/bulletin/services/logger"
	"github.com/drukschool/bulletin/ui"
	"github.com/drukschool/bulletin/ui/render"
)

func main() {
	std := log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lshortfile)

	// set up services
	var logSvc core.Logger
	if core.Conf.GetBool("debug") {
		logSvc = logsvc.NewConsoleLogger(std)
	} else {
		logSvc = logsvc.NewRollbarLogger(std)
	}

	gw := gateway.NewClient(core.Conf.GetString("apiBaseURL"), logSvc)

	ctrl := ui.NewController(gw, logSvc, ui.AlwaysConfirm)
	renderer, err := render.NewHTMLRenderer()
	errAndDie(err)

	// probe any saved session before serving
	if _, err := ctrl.Start(context.Background()); err != nil {
		logSvc.Error("session bootstrap failed", err)
	}

	app := NewServer(&Options{
		Addr:     core.Conf.GetString("webAddr"),
		Ctrl:     ctrl,
		Renderer: renderer,
	})
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
