package httpmodels

import (
	"strings"

	"github.com/IliyanIlievPH/partner-management/models"
)

type HTTPPartnerContactRequest struct {
	LocationId  string `json:"locationId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AdaptHTTPPartnerContactRequest builds the wire payload for a contact
// person. The email is normalized to lowercase before transmission.
func AdaptHTTPPartnerContactRequest(contact models.PartnerContact) HTTPPartnerContactRequest {
	return HTTPPartnerContactRequest{
		LocationId:  contact.LocationId,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       strings.ToLower(contact.Email),
		PhoneNumber: contact.PhoneNumber,
	}
}

type HTTPPartnerContactResponse struct {
	ErrorCode string `json:"errorCode"`
}

func AdaptPartnerContactErrorCode(resp HTTPPartnerContactResponse) models.PartnerContactErrorCode {
	if resp.ErrorCode == "" {
		return models.PartnerContactErrorCodeNone
	}
	return models.PartnerContactErrorCode(resp.ErrorCode)
}
