package httpinterface

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexwallet/prefsd/internal/core/application"
	"github.com/hexwallet/prefsd/internal/core/domain"
)

func (api *APIService) ListIdentities(c *gin.Context) {
	identities, err := api.prefs.ListIdentities(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, identities)
}

func (api *APIService) SetAddresses(c *gin.Context) {
	var req setAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	if err := api.prefs.SetAddresses(
		c.Request.Context(), req.Addresses,
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) GetSelectedAddress(c *gin.Context) {
	selected, err := api.prefs.GetSelectedAddress(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": selected})
}

func (api *APIService) SetSelectedAddress(c *gin.Context) {
	var req selectAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	if err := api.prefs.SetSelectedAddress(
		c.Request.Context(), req.Address,
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) SetAccountLabel(c *gin.Context) {
	var req setLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	if err := api.prefs.SetAccountLabel(
		c.Request.Context(), c.Param("address"), req.Label,
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) RemoveAddress(c *gin.Context) {
	if err := api.prefs.RemoveAddress(
		c.Request.Context(), c.Param("address"),
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) ListEndpoints(c *gin.Context) {
	endpoints, err := api.prefs.ListRPCEndpoints(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoints)
}

func (api *APIService) AddEndpoint(c *gin.Context) {
	var req endpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	if err := api.prefs.AddRPCEndpoint(
		c.Request.Context(), req.RPCURL, req.ChainID, req.options(),
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) UpdateEndpoint(c *gin.Context) {
	var req endpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	if err := api.prefs.UpdateRPCEndpoint(
		c.Request.Context(), req.RPCURL, req.ChainID, req.options(),
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveEndpoint expects the endpoint url in the "url" query parameter
// since rpc urls contain slashes.
func (api *APIService) RemoveEndpoint(c *gin.Context) {
	rpcURL := c.Query("url")
	if len(rpcURL) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{"missing url query parameter"})
		return
	}

	if err := api.prefs.RemoveRPCEndpoint(
		c.Request.Context(), rpcURL,
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) SetFlags(c *gin.Context) {
	var req setFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	ctx := c.Request.Context()
	if req.ForgottenPassword != nil {
		if err := api.prefs.SetPasswordForgotten(
			ctx, *req.ForgottenPassword,
		); err != nil {
			abortWithError(c, err)
			return
		}
	}
	if req.UsePhishDetect != nil {
		if err := api.prefs.SetUsePhishDetect(
			ctx, *req.UsePhishDetect,
		); err != nil {
			abortWithError(c, err)
			return
		}
	}
	if req.UseTokenDetection != nil {
		if err := api.prefs.SetUseTokenDetection(
			ctx, *req.UseTokenDetection,
		); err != nil {
			abortWithError(c, err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (api *APIService) GetNetworkStatus(c *gin.Context) {
	status, err := api.prefs.GetNetworkStatus(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (api *APIService) GetState(c *gin.Context) {
	snapshot, err := api.prefs.GetSnapshot(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidChainID),
		errors.Is(err, domain.ErrMissingRPCURL),
		errors.Is(err, domain.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
	case errors.Is(err, domain.ErrIdentityNotFound):
		c.JSON(http.StatusNotFound, errorResponse{err.Error()})
	case errors.Is(err, application.ErrMigrationFailed):
		c.JSON(http.StatusBadGateway, errorResponse{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{err.Error()})
	}
}
