package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zestagio/geo-server/internal/resources"
	"github.com/zestagio/geo-server/internal/server"
	"github.com/zestagio/geo-server/internal/server/errhandler"
)

const nameServerPublic = "server-public"

func initServerPublic(
	productionMode bool,
	addr string,
	allowOrigins []string,
	staticRoot string,

	catalog *resources.Catalog,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerPublic)

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.ResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		allowOrigins,
		staticRoot,
		catalog.Register,
		catalog.Paths(),
		errHandler.Handle,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
