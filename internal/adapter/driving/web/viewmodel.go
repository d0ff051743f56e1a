package web

import (
	vm "github.com/ericfisherdev/guestwifi/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// toWiFiPageViewModel converts a lookup result and the configured network
// into the page view model. noticeHTML must already be sanitized.
func toWiFiPageViewModel(result model.LookupResult, network model.WiFiNetwork, noticeHTML string) vm.WiFiPageViewModel {
	page := vm.WiFiPageViewModel{
		NetworkName:       result.NetworkName,
		Date:              result.Date,
		YesterdayPassword: result.YesterdayPassword,
		YesterdayDate:     result.YesterdayDate,
		NoticeHTML:        noticeHTML,
	}
	if page.NetworkName == "" {
		page.NetworkName = network.Name
	}

	if result.HasError() {
		page.ErrorMessage = result.Error
		if page.ErrorMessage == "" {
			page.ErrorMessage = result.ErrorState.Message()
		}
		page.ErrorState = string(result.ErrorState)
		page.ActionText = result.ErrorState.ActionText()
		page.Recoverable = result.ErrorState.Recoverable()
		return page
	}

	if result.Found() {
		page.Password = result.Password
		page.QRPayload = network.QRPayload(result.Password)
	}

	return page
}
