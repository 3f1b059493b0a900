package httpinterface

import "github.com/hexwallet/prefsd/internal/core/domain"

type setAddressesRequest struct {
	Addresses []string `json:"addresses" binding:"required"`
}

type setLabelRequest struct {
	Label string `json:"label" binding:"required"`
}

type selectAddressRequest struct {
	Address string `json:"address"`
}

type endpointRequest struct {
	RPCURL   string            `json:"rpcUrl" binding:"required"`
	ChainID  string            `json:"chainId" binding:"required"`
	Ticker   string            `json:"ticker"`
	Nickname string            `json:"nickname"`
	Prefs    map[string]string `json:"rpcPrefs"`
}

func (r endpointRequest) options() domain.EndpointOptions {
	return domain.EndpointOptions{
		Ticker:   r.Ticker,
		Nickname: r.Nickname,
		Prefs:    r.Prefs,
	}
}

type setFlagsRequest struct {
	ForgottenPassword *bool `json:"forgottenPassword"`
	UsePhishDetect    *bool `json:"usePhishDetect"`
	UseTokenDetection *bool `json:"useTokenDetection"`
}

type errorResponse struct {
	Error string `json:"error"`
}
