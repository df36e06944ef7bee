package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code"`
}

type ErrorCode string

const (
	// partner related
	PartnerNotFound         ErrorCode = "partner_not_found"
	ClientAlreadyRegistered ErrorCode = "already_registered"

	// location related
	LocationExternalIdNotUnique ErrorCode = "location_external_id_not_unique"
	ContactRegistrationFailed   ErrorCode = "registration_failed"
	ContactUpdateFailed         ErrorCode = "contact_update_failed"
)
