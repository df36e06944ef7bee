package models

// PartnerContactErrorCode is the enumerated result of a call against the
// customer profile service. The remote api reports failures through these
// codes rather than http errors.
type PartnerContactErrorCode string

const (
	PartnerContactErrorCodeNone               PartnerContactErrorCode = "None"
	PartnerContactErrorCodeDoesNotExist       PartnerContactErrorCode = "PartnerContactDoesNotExist"
	PartnerContactErrorCodeInvalidPhoneNumber PartnerContactErrorCode = "InvalidPhoneNumber"
)

func (c PartnerContactErrorCode) IsSuccess() bool {
	return c == PartnerContactErrorCodeNone
}

// PartnerContact is the contact person payload pushed to the customer
// profile service, keyed by the location id.
type PartnerContact struct {
	LocationId  string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// ContactSyncResult pairs the outcome of a single customer profile call with
// the location it was issued for.
type ContactSyncResult struct {
	ErrorCode PartnerContactErrorCode
	Location  Location
}
