package request

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"certifica_condo/internal/domain/entities"
)

// MercadoPagoNotification accepts both notification styles the provider sends:
//
//	webhooks: {"type":"payment","action":"payment.updated","data":{"id":"123"}}
//	IPN:      {"topic":"merchant_order","resource":"https://api.mercadolibre.com/merchant_orders/456"}
//
// Either may also arrive only as query parameters (type/topic, data.id/id).
type MercadoPagoNotification struct {
	Type     string `json:"type"`
	Topic    string `json:"topic"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Data     struct {
		ID FlexibleID `json:"id"`
	} `json:"data"`
}

// FlexibleID decodes ids sent either as JSON strings or numbers.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// Normalize folds body and query into the single internal notification shape.
// The bool is false when no supported kind or id could be found.
func (n MercadoPagoNotification) Normalize(query url.Values) (entities.PaymentNotification, bool) {
	kind := firstNonEmpty(n.Type, n.Topic, query.Get("type"), query.Get("topic"))
	if kind == "" && n.Action != "" {
		kind, _, _ = strings.Cut(n.Action, ".")
	}
	id := firstNonEmpty(string(n.Data.ID), query.Get("data.id"), query.Get("id"), lastSegment(n.Resource))

	out := entities.PaymentNotification{ResourceID: id}
	switch strings.ToLower(kind) {
	case "payment":
		out.Kind = entities.NotificationKindPayment
	case "merchant_order", "topic_merchant_order_wh":
		out.Kind = entities.NotificationKindMerchantOrder
	default:
		return out, false
	}
	return out, id != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// lastSegment extracts the id from an IPN resource, which is either a bare id
// or a URL ending in it.
func lastSegment(resource string) string {
	resource = strings.TrimRight(strings.TrimSpace(resource), "/")
	if i := strings.LastIndex(resource, "/"); i >= 0 {
		return resource[i+1:]
	}
	return resource
}
