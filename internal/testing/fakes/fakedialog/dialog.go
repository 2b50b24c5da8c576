// Package fakedialog provides a test fake for ports.DialogProvider.
package fakedialog

import "github.com/acolita/curator/internal/ports"

// Provider is a controllable fake DialogProvider for testing.
type Provider struct {
	// Result is the form data returned by OptionsForm.
	Result ports.OptionsFormData
	// Err is the error returned by OptionsForm.
	Err error
	// Called tracks whether OptionsForm was invoked.
	Called bool
	// ReceivedPrefill captures the prefill data passed to OptionsForm.
	ReceivedPrefill ports.OptionsFormData
}

// New returns a new fake dialog provider.
func New() *Provider {
	return &Provider{}
}

// OptionsForm returns the pre-configured Result and Err.
func (p *Provider) OptionsForm(prefill ports.OptionsFormData) (ports.OptionsFormData, error) {
	p.Called = true
	p.ReceivedPrefill = prefill
	if p.Err != nil {
		return prefill, p.Err
	}
	return p.Result, nil
}

var _ ports.DialogProvider = (*Provider)(nil)
