package domain

// Preferences holds the scalar wallet settings owned by the controller.
type Preferences struct {
	// SelectedAddress is the currently active identity's address, empty
	// if none is selected. Selecting an address that is not in the
	// identity registry is allowed and represents a not-yet-synced
	// selection.
	SelectedAddress string
	// ForgottenPassword marks that the user started the password
	// recovery flow.
	ForgottenPassword bool
	// UsePhishDetect enables phishing detection on visited sites.
	UsePhishDetect bool
	// UseTokenDetection enables automatic token detection.
	UseTokenDetection bool
}

// NewPreferences returns the default settings of a fresh wallet.
func NewPreferences() *Preferences {
	return &Preferences{
		UsePhishDetect: true,
	}
}
