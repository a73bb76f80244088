package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for collecting an approved quote.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// payment provider schemas.

type QuotePaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
