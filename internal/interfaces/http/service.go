package httpinterface

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hexwallet/prefsd/internal/core/application"
)

// APIService exposes the preferences controller over a REST interface.
// It is an adapter only, every request is delegated to the controller.
type APIService struct {
	address string
	prefs   *application.PreferencesService
}

func NewAPIService(
	address string, prefs *application.PreferencesService,
) (*APIService, error) {
	if prefs == nil {
		return nil, fmt.Errorf("missing preferences service")
	}

	return &APIService{
		address: address,
		prefs:   prefs,
	}, nil
}

func (api *APIService) Serve() error {
	log.Infof("http interface is listening on %s", api.address)

	gin.SetMode(gin.ReleaseMode)
	return api.router().Run(api.address)
}

func (api *APIService) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "HEAD", "OPTIONS", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	apiv1 := r.Group("/v1")

	identities := apiv1.Group("/identities")
	identities.GET("", api.ListIdentities)
	identities.PUT("", api.SetAddresses)
	identities.GET("/selected", api.GetSelectedAddress)
	identities.PUT("/selected", api.SetSelectedAddress)
	identities.POST("/:address/label", api.SetAccountLabel)
	identities.DELETE("/:address", api.RemoveAddress)

	endpoints := apiv1.Group("/endpoints")
	endpoints.GET("", api.ListEndpoints)
	endpoints.POST("", api.AddEndpoint)
	endpoints.PUT("", api.UpdateEndpoint)
	endpoints.DELETE("", api.RemoveEndpoint)

	apiv1.POST("/flags", api.SetFlags)
	apiv1.GET("/network", api.GetNetworkStatus)
	apiv1.GET("/state", api.GetState)

	return r
}
