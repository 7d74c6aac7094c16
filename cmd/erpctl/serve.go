package main

import (
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
	"github.com/goliatone/go-erp-dashboard/components/erp/gorouter"
	"github.com/goliatone/go-erp-dashboard/components/erp/httpapi"
)

type serveCmd struct {
	Addr     string `default:":8080" env:"ERP_ADDR" help:"Listen address."`
	BasePath string `name:"base-path" default:"/erp" help:"Path prefix for every route."`
}

func (cmd *serveCmd) Run(g *Globals) error {
	logger := g.logger()
	hook := erp.NewBroadcastHook()
	svc, err := g.service(logger, hook)
	if err != nil {
		return err
	}
	renderer, err := erp.NewTemplateRenderer()
	if err != nil {
		return err
	}

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: erp.NewController(svc, renderer),
		API:        httpapi.NewHandlers(svc, hook, erp.NewLogTelemetry(logger)),
		Broadcast:  hook,
		BasePath:   cmd.BasePath,
	}); err != nil {
		return err
	}

	logger.WithField("addr", cmd.Addr).Infof("dashboard ready at %s/dashboard", cmd.BasePath)
	return server.Serve(cmd.Addr)
}
