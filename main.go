package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/handlers"
)

func main() {
	log.Namespace = "paypal.express.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	log.Info("Starting paypal.express.api service", log.Data{"bind_addr": cfg.BindAddr, "paypal_env": cfg.PaypalEnv, "capture_api": cfg.PaypalCaptureAPI})
	err = http.ListenAndServe(cfg.BindAddr, router)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal.express.api service")
}
