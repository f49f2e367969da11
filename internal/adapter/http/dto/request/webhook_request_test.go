package request

import (
	"encoding/json"
	"net/url"
	"testing"

	"certifica_condo/internal/domain/entities"
)

func TestMercadoPagoNotification_Normalize(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		query    string
		wantKind entities.NotificationKind
		wantID   string
		wantOK   bool
	}{
		{"webhook numeric id", `{"type":"payment","action":"payment.updated","data":{"id":123456}}`, "", entities.NotificationKindPayment, "123456", true},
		{"webhook string id", `{"type":"payment","data":{"id":" 99 "}}`, "", entities.NotificationKindPayment, "99", true},
		{"ipn resource url", `{"topic":"merchant_order","resource":"https://api.mercadolibre.com/merchant_orders/456"}`, "", entities.NotificationKindMerchantOrder, "456", true},
		{"ipn bare resource", `{"topic":"payment","resource":"777"}`, "", entities.NotificationKindPayment, "777", true},
		{"query webhook", `{}`, "type=payment&data.id=55", entities.NotificationKindPayment, "55", true},
		{"query ipn", ``, "topic=merchant_order&id=66", entities.NotificationKindMerchantOrder, "66", true},
		{"kind from action", `{"action":"payment.created","data":{"id":"8"}}`, "", entities.NotificationKindPayment, "8", true},
		{"unsupported type", `{"type":"subscription_preapproval","data":{"id":"1"}}`, "", "", "1", false},
		{"missing id", `{"type":"payment"}`, "", entities.NotificationKindPayment, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n MercadoPagoNotification
			if tc.body != "" {
				if err := json.Unmarshal([]byte(tc.body), &n); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
			}
			q, _ := url.ParseQuery(tc.query)
			got, ok := n.Normalize(q)
			if ok != tc.wantOK || got.Kind != tc.wantKind || got.ResourceID != tc.wantID {
				t.Fatalf("expected (%s, %q, %v), got (%s, %q, %v)", tc.wantKind, tc.wantID, tc.wantOK, got.Kind, got.ResourceID, ok)
			}
		})
	}
}
