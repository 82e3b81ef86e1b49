package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/infofatec/alertboard/internal/alertboard/service"
)

type Api struct {
	svc service.AlertService
}

// NewApi binds the alert routes and the metrics endpoint onto the router.
func NewApi(router *gin.Engine, svc service.AlertService) *Api {
	api := &Api{svc: svc}
	api.setupRouters(router)
	return api
}

func (api *Api) setupRouters(router *gin.Engine) {
	router.GET("/alerts", api.ListAlerts)
	router.POST("/alerts", api.CreateAlert)
	router.GET("/alerts/:id", api.GetAlert)
	router.PUT("/alerts/:id", api.UpdateAlert)
	router.DELETE("/alerts/:id", api.DeleteAlert)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
