package handler

const (
	paramID = "id"

	queryFirstName = "first_name"
	queryLastName  = "last_name"
	queryEmail     = "email"
	queryPhone     = "phone"

	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	msgInvalidClientID         = "invalid client id"
	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgClientDeleted           = "client deleted"
	msgPhoneDeleted            = "phone deleted"
)
