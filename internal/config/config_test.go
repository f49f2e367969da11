package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "TENDER_DEFAULT_COST", "PLAN_DURATION", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "PUBLIC_BASE_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.TenderDefaultCost != 10 {
		t.Fatalf("expected default tender cost 10, got %d", cfg.TenderDefaultCost)
	}
	if cfg.PlanDuration != 30*24*time.Hour {
		t.Fatalf("expected 30 days, got %v", cfg.PlanDuration)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("mock must be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TENDER_DEFAULT_COST", "15")
	t.Setenv("PLAN_DURATION", "48h")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("PUBLIC_BASE_URL", "https://condo.example.com/")

	cfg := Load()
	if cfg.Port != 9090 || cfg.TenderDefaultCost != 15 || cfg.PlanDuration != 48*time.Hour {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode from MERCADOPAGO_MOCK")
	}
	if cfg.PublicBaseURL != "https://condo.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.PublicBaseURL)
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	if _, ok := c.CoinPackage("moedas-50"); !ok {
		t.Fatalf("expected moedas-50 in embedded catalog")
	}
	if _, ok := c.Plan("ouro"); !ok {
		t.Fatalf("expected ouro plan in embedded catalog")
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("coin_packages:\n  - id: x\n    coins: 5\n    price: 1\nplans: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = LoadCatalog(path)
	if err != nil {
		t.Fatalf("file catalog: %v", err)
	}
	if len(c.CoinPackages) != 1 || c.CoinPackages[0].Coins != 5 {
		t.Fatalf("unexpected catalog: %+v", c)
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":       "coin_packages: [",
		"zero coins":     "coin_packages:\n  - id: x\n    coins: 0\n    price: 1\n",
		"duplicate plan": "plans:\n  - id: a\n    price: 1\n  - id: a\n    price: 2\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(raw)); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}
